package sim

// Vector holds one non-negative integer quantity per resource type.
// The length is the number of resource types and is fixed for a run.
type Vector []int

// Matrix holds one Vector per process, indexed by 0-based process id.
type Matrix []Vector

// Clone returns an independent copy of the vector.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Sum returns the total quantity across all resource types.
func (v Vector) Sum() int {
	total := 0
	for _, q := range v {
		total += q
	}
	return total
}

// Clone returns a deep copy of the matrix; rows are copied, not shared.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = row.Clone()
	}
	return out
}

// State is a snapshot of a Banker's-algorithm system: free resources plus
// per-process maximum claims and current holdings. The engine treats every
// State it receives as caller-owned and immutable.
type State struct {
	Available  Vector // free quantity per resource type
	Max        Matrix // declared maximum demand per process
	Allocation Matrix // currently held quantity per process
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	return State{
		Available:  s.Available.Clone(),
		Max:        s.Max.Clone(),
		Allocation: s.Allocation.Clone(),
	}
}

// NumProcesses returns the number of processes in the snapshot.
func (s State) NumProcesses() int {
	return len(s.Max)
}

// NumResources returns the number of resource types in the snapshot.
func (s State) NumResources() int {
	return len(s.Available)
}

// Need returns max minus allocation for process i, computed fresh.
// Entries missing from a ragged row count as zero rather than panicking;
// shape validation happens at the boundary, not here.
func (s State) Need(i int) Vector {
	need := make(Vector, s.NumResources())
	for j := range need {
		need[j] = at(s.Max[i], j) - at(s.Allocation[i], j)
	}
	return need
}

// at returns v[j], or 0 when j is out of range.
func at(v Vector, j int) int {
	if j < 0 || j >= len(v) {
		return 0
	}
	return v[j]
}

// addInto adds src into dst element-wise, bounded by len(dst).
func addInto(dst, src Vector) {
	for j := range dst {
		dst[j] += at(src, j)
	}
}

// subFrom subtracts src from dst element-wise, bounded by len(dst).
func subFrom(dst, src Vector) {
	for j := range dst {
		dst[j] -= at(src, j)
	}
}
