// Implements the four placement strategies over a per-run arena of block
// capacities.

package memory

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Recognized placement strategy names.
const (
	FirstFit = "first-fit"
	NextFit  = "next-fit"
	BestFit  = "best-fit"
	WorstFit = "worst-fit"
)

// ValidStrategies is the set of recognized placement strategy names.
var ValidStrategies = map[string]bool{FirstFit: true, NextFit: true, BestFit: true, WorstFit: true}

// Allocate places processes into blocks using the named strategy and
// reports the resulting fragmentation. Processes are handled strictly in
// input order; an unallocatable process is recorded in the result, never
// an error. The caller's slices are left untouched.
//
// Strategy semantics, all over the remaining (unconsumed) blocks:
//   - first-fit: lowest-indexed block that fits
//   - next-fit: first fit at or after the cursor, which sits just past the
//     block chosen for the previous successful allocation; circular scan of
//     at most len(blocks) probes, cursor unchanged by failures
//   - best-fit: smallest block that fits, ties to the lowest index
//   - worst-fit: largest block that fits, ties to the lowest index
func Allocate(strategy string, blocks []Block, processes []Process) (*Result, error) {
	if !ValidStrategies[strategy] {
		return nil, fmt.Errorf("unknown placement strategy %q", strategy)
	}

	// Per-run scratch copy of capacities; a consumed block drops to 0.
	arena := make([]int, len(blocks))
	for i, b := range blocks {
		arena[i] = b.Size
	}

	res := &Result{
		Algorithm:    strategy,
		Allocation:   make([]int, len(processes)),
		InternalFrag: make([]int, len(blocks)),
	}

	cursor := 0 // next-fit scan start
	for pi, proc := range processes {
		choice := pick(strategy, arena, proc.Size, cursor)
		if choice < 0 {
			res.Allocation[pi] = Unallocated
			res.UnallocatedProcs = append(res.UnallocatedProcs, proc.ID)
			logrus.Debugf("memory %s: process %d (size %d) unallocated", strategy, proc.ID, proc.Size)
			continue
		}
		res.Allocation[pi] = choice
		res.InternalFrag[choice] = arena[choice] - proc.Size
		arena[choice] = 0
		if strategy == NextFit {
			cursor = (choice + 1) % len(arena)
		}
		logrus.Debugf("memory %s: process %d (size %d) -> block %d, internal frag %d",
			strategy, proc.ID, proc.Size, choice, res.InternalFrag[choice])
	}

	res.finish(arena, processes)
	return res, nil
}

// pick returns the index of the block the strategy chooses for a demand of
// the given size, or -1 when no remaining block fits.
func pick(strategy string, arena []int, size, cursor int) int {
	choice := -1
	switch strategy {
	case FirstFit:
		for b := range arena {
			if arena[b] >= size {
				return b
			}
		}
	case NextFit:
		for probe := 0; probe < len(arena); probe++ {
			b := (cursor + probe) % len(arena)
			if arena[b] >= size {
				return b
			}
		}
	case BestFit:
		for b := range arena {
			if arena[b] >= size && (choice < 0 || arena[b] < arena[choice]) {
				choice = b
			}
		}
	case WorstFit:
		for b := range arena {
			if arena[b] >= size && (choice < 0 || arena[b] > arena[choice]) {
				choice = b
			}
		}
	}
	return choice
}
