// Implements the Banker's safety algorithm: can every process obtain its
// full maximum claim and finish, in some order, from the current state?

package sim

import (
	"github.com/sirupsen/logrus"
)

// SafetyReport is the outcome of one safety evaluation.
type SafetyReport struct {
	Safe         bool
	SafeSequence []int // finishing order; empty when unsafe
	Unfinished   []int // processes unable to finish, ascending; empty when safe
}

// IsSafeState runs the Banker's safety algorithm over a private copy of the
// inputs. A process can finish when its remaining need fits within the
// working available vector; its full allocation is then returned to the
// pool.
//
// The scan policy is deterministic and greedy: each pass walks unfinished
// processes in ascending id order and finishes every eligible process the
// moment it is found, so one pass may finish several. Passes repeat until
// all processes are finished (safe) or a full pass finishes none (unsafe).
// Each pass finishes at least one process or halts, bounding the run at
// O(processes^2 x resource types).
func IsSafeState(available Vector, max, allocation Matrix) SafetyReport {
	st := State{Available: available, Max: max, Allocation: allocation}.Clone()
	n := st.NumProcesses()

	work := st.Available
	finished := make([]bool, n)
	sequence := make([]int, 0, n)

	for len(sequence) < n {
		progressed := false
		for i := 0; i < n; i++ {
			if finished[i] || !fits(st.Need(i), work) {
				continue
			}
			// Process i can run to completion; reclaim its allocation.
			addInto(work, st.Allocation[i])
			finished[i] = true
			sequence = append(sequence, i)
			progressed = true
			logrus.Debugf("safety: process %d finishes, available now %v", i, work)
		}
		if !progressed {
			break
		}
	}

	if len(sequence) == n {
		return SafetyReport{Safe: true, SafeSequence: sequence}
	}
	unfinished := make([]int, 0, n-len(sequence))
	for i := 0; i < n; i++ {
		if !finished[i] {
			unfinished = append(unfinished, i)
		}
	}
	logrus.Debugf("safety: unsafe state, %d processes cannot finish: %v", len(unfinished), unfinished)
	return SafetyReport{Safe: false, Unfinished: unfinished}
}

// fits reports whether need can be satisfied from avail in full.
func fits(need, avail Vector) bool {
	for j := range avail {
		if at(need, j) > avail[j] {
			return false
		}
	}
	return true
}
