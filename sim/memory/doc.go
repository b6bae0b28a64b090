// Package memory implements contiguous memory-block allocation under four
// competing placement strategies (first-fit, next-fit, best-fit,
// worst-fit) with internal/external fragmentation accounting.
//
// Allocate is the single entry point. Each call copies block capacities
// into a function-local arena, so runs are independent and the caller's
// slices are never mutated. A chosen block is consumed whole for the rest
// of the run: its leftover space is internal fragmentation, never reused
// by a later process.
package memory
