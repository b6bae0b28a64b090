package memory

import "fmt"

// Unallocated marks a process that no block could accommodate.
const Unallocated = -1

// Result reports one allocation run. It is pure data for the rendering
// host.
type Result struct {
	Algorithm        string
	Allocation       []int // per process: chosen block index or Unallocated
	InternalFrag     []int // per block: block size minus placed process size; 0 if free
	ExternalFrag     int
	TotalFrag        int
	UnallocatedProcs []int
}

// finish computes the end-of-run fragmentation totals. External
// fragmentation counts free blocks too small for the largest unallocated
// process; with nothing left unallocated there is no pending demand to
// frustrate, so it is zero.
func (r *Result) finish(arena []int, processes []Process) {
	largest := 0
	for pi, proc := range processes {
		if r.Allocation[pi] == Unallocated && proc.Size > largest {
			largest = proc.Size
		}
	}
	if largest > 0 {
		for _, free := range arena {
			if free > 0 && free < largest {
				r.ExternalFrag += free
			}
		}
	}
	r.TotalFrag = r.ExternalFrag
	for _, frag := range r.InternalFrag {
		r.TotalFrag += frag
	}
}

// Print displays the allocation outcome and fragmentation totals.
func (r *Result) Print() {
	fmt.Printf("=== %s ===\n", r.Algorithm)
	for pi, choice := range r.Allocation {
		if choice == Unallocated {
			fmt.Printf("Process %d -> unallocated\n", pi)
			continue
		}
		fmt.Printf("Process %d -> block %d (internal frag %d)\n", pi, choice, r.InternalFrag[choice])
	}
	if len(r.UnallocatedProcs) > 0 {
		fmt.Printf("Unallocated processes : %v\n", r.UnallocatedProcs)
	}
	fmt.Printf("External fragmentation: %d\n", r.ExternalFrag)
	fmt.Printf("Total fragmentation   : %d\n", r.TotalFrag)
}
