// Package sim provides the Banker's-algorithm engine for resource-sim.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - vector.go: Vector/Matrix value types and the State snapshot
//   - safety.go: the safety-state checker and its deterministic scan policy
//   - simulator.go: the request replay loop that commits granted requests
//
// # Architecture
//
// Every entry point is a pure function over defensively copied inputs:
//   - IsSafeState: does some finishing order exist for all processes?
//   - ResourceRequest: grant or deny a single process's request
//   - RunSimulation: replay a request sequence against evolving state
//
// Denials are ordinary result data (RequestDecision.Reason), never Go
// errors. Go errors appear only at the input boundary: scenario.go loads
// YAML scenario files and validate.go rejects malformed matrices with a
// typed *InputError before the engine runs.
//
// The contiguous memory-block allocator is an independent engine and lives
// in the sim/memory sub-package; the two share nothing but the host CLI.
package sim
