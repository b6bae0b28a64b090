package memory

// Block is a contiguous memory region of fixed capacity.
type Block struct {
	ID   int // position in the input list
	Size int // capacity in the caller's unit
}

// Process is a memory demand to be placed into a single block. Unrelated
// to the Banker's-algorithm process in package sim; the two engines only
// share the word.
type Process struct {
	ID   int
	Size int
}

// BlocksFromSizes builds a block list from bare sizes, ids by position.
func BlocksFromSizes(sizes []int) []Block {
	blocks := make([]Block, len(sizes))
	for i, size := range sizes {
		blocks[i] = Block{ID: i, Size: size}
	}
	return blocks
}

// ProcessesFromSizes builds a process list from bare sizes, ids by position.
func ProcessesFromSizes(sizes []int) []Process {
	procs := make([]Process, len(sizes))
	for i, size := range sizes {
		procs[i] = Process{ID: i, Size: size}
	}
	return procs
}
