// Plain-text rendering of engine results for the CLI host.

package sim

import "fmt"

// Print displays a safety verdict.
func (r SafetyReport) Print() {
	if r.Safe {
		fmt.Println("State       : SAFE")
		fmt.Printf("Safe sequence: %v\n", r.SafeSequence)
		return
	}
	fmt.Println("State       : UNSAFE")
	fmt.Printf("Cannot finish: %v\n", r.Unfinished)
}

// Print displays the full simulation outcome: initial verdict followed by
// one line per replayed request.
func (r *SimulationReport) Print() {
	fmt.Println("=== Banker's Algorithm Simulation ===")
	fmt.Printf("Run ID      : %s\n", r.RunID)
	r.Initial.Print()
	if !r.Initial.Safe && len(r.Decisions) == 0 {
		fmt.Println("Requests not evaluated: initial state is unsafe")
		return
	}
	for i, d := range r.Decisions {
		if d.Granted {
			fmt.Printf("Request %d: process %d + %v -> GRANTED, safe sequence %v\n",
				i, d.ProcessID, d.Request, d.SafeSequence)
			continue
		}
		switch d.Reason {
		case DenialUnsafe:
			fmt.Printf("Request %d: process %d + %v -> DENIED (%s; cannot finish %v)\n",
				i, d.ProcessID, d.Request, d.Reason, d.Unsafe)
		default:
			fmt.Printf("Request %d: process %d + %v -> DENIED (%s at resource %d)\n",
				i, d.ProcessID, d.Request, d.Reason, d.ResourceIndex)
		}
	}
	fmt.Printf("Granted     : %d\n", r.Granted)
	fmt.Printf("Denied      : %d\n", r.Denied)
}
