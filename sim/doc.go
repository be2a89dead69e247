// Package sim implements the HPA configurable-scaling-behavior control
// loop as a deterministic simulation.
//
// # Reading Guide
//
// Start with these three files to understand the algorithm:
//   - behavior.go: the Behavior/ScalingRules/Policy configuration model
//   - loop.go: the tick loop, sync-boundary commits, and run lifecycle
//   - stabilization.go: the desired-replica history and rolling min/max
//
// # Architecture
//
// The loop composes three pure decision functions over its held state:
//   - AllowedByTolerance (tolerance.go): is the metric far enough off target
//   - Stabilize (stabilization.go): fold recent desired values into the
//     least-aggressive actionable value
//   - ScalingRules.AllowedChange (policy.go): rate-limit the change
//     magnitude per sync period
//
// Collaborators live in sub-packages:
//   - sim/metric/: metric sources (scenario shapes, seeded noise, a
//     sandboxed expression evaluator)
//   - sim/trace/: pure record types, the append-only run trace, CSV
//     export, and summaries
//
// Data flows one way per tick: time → metric → raw desired →
// (gate, stabilize, policy-limit) → committed replicas → records.
package sim
