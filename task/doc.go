// Package task defines the external task-proxy contract the PDR planner
// consumes: finite-domain variables, facts, operators, an initial state
// and a goal. It does not parse any file format or own a task's real
// data — it is the proxy interface a surrounding planner's task loader
// is expected to satisfy, plus a minimal in-memory Task for tests,
// examples, and embedding small hand-built problems.
package task
