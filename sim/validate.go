package sim

import "fmt"

// InputError reports structurally malformed engine input, such as
// mismatched matrix dimensions or negative quantities. Shape checks run
// once at the boundary so the engine itself stays validation-free.
type InputError struct {
	Field  string // which input is malformed ("max", "allocation", ...)
	Detail string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Detail)
}

// ValidateState checks that a Banker's-algorithm snapshot is well formed:
// max and allocation have one row per process, every row has one entry per
// resource type, all entries are non-negative, and no process holds more
// than its declared maximum.
func ValidateState(st State) error {
	r := st.NumResources()
	for j, q := range st.Available {
		if q < 0 {
			return &InputError{Field: "available", Detail: fmt.Sprintf("resource %d is negative (%d)", j, q)}
		}
	}
	if len(st.Max) != len(st.Allocation) {
		return &InputError{Field: "allocation", Detail: fmt.Sprintf("%d rows, want %d to match max", len(st.Allocation), len(st.Max))}
	}
	if err := validateMatrix("max", st.Max, r); err != nil {
		return err
	}
	if err := validateMatrix("allocation", st.Allocation, r); err != nil {
		return err
	}
	for i := range st.Allocation {
		for j := range st.Allocation[i] {
			if st.Allocation[i][j] > st.Max[i][j] {
				return &InputError{
					Field:  "allocation",
					Detail: fmt.Sprintf("process %d holds %d of resource %d, above its maximum claim %d", i, st.Allocation[i][j], j, st.Max[i][j]),
				}
			}
		}
	}
	return nil
}

// validateMatrix checks row widths and negativity for one matrix.
func validateMatrix(field string, m Matrix, resources int) error {
	for i, row := range m {
		if len(row) != resources {
			return &InputError{Field: field, Detail: fmt.Sprintf("row %d has %d entries, want %d", i, len(row), resources)}
		}
		for j, q := range row {
			if q < 0 {
				return &InputError{Field: field, Detail: fmt.Sprintf("entry [%d][%d] is negative (%d)", i, j, q)}
			}
		}
	}
	return nil
}

// validateRequest checks one replayed request against the snapshot shape.
func validateRequest(st State, idx int, req Request) error {
	if req.ProcessID < 0 || req.ProcessID >= st.NumProcesses() {
		return &InputError{Field: "requests", Detail: fmt.Sprintf("request %d names process %d, want 0..%d", idx, req.ProcessID, st.NumProcesses()-1)}
	}
	if len(req.Resources) != st.NumResources() {
		return &InputError{Field: "requests", Detail: fmt.Sprintf("request %d has %d entries, want %d", idx, len(req.Resources), st.NumResources())}
	}
	for j, q := range req.Resources {
		if q < 0 {
			return &InputError{Field: "requests", Detail: fmt.Sprintf("request %d entry %d is negative (%d)", idx, j, q)}
		}
	}
	return nil
}
