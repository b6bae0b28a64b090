package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/resource-sim/resource-sim/sim/memory"
)

// Scenario is the top-level YAML input for the CLI host. Either section
// may be omitted; the subcommands require the one they run.
type Scenario struct {
	Banker *BankerScenario `yaml:"banker,omitempty"`
	Memory *MemoryScenario `yaml:"memory,omitempty"`
}

// BankerScenario holds one Banker's-algorithm snapshot plus an optional
// request sequence to replay.
type BankerScenario struct {
	Available  Vector    `yaml:"available"`
	Max        Matrix    `yaml:"max"`
	Allocation Matrix    `yaml:"allocation"`
	Requests   []Request `yaml:"requests,omitempty"`
}

// MemoryScenario holds memory blocks and process demands as size lists;
// ids are the list positions. Strategies defaults to all four when empty.
type MemoryScenario struct {
	Blocks     []int    `yaml:"blocks"`
	Processes  []int    `yaml:"processes"`
	Strategies []string `yaml:"strategies,omitempty"`
}

// LoadScenario reads and parses a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// State builds the engine snapshot from the scenario section.
func (b *BankerScenario) State() State {
	return State{Available: b.Available, Max: b.Max, Allocation: b.Allocation}
}

// Validate checks every section present in the scenario. All shape and
// negativity errors are caught here, before any engine runs.
func (s *Scenario) Validate() error {
	if s.Banker == nil && s.Memory == nil {
		return &InputError{Field: "scenario", Detail: "needs a banker or memory section"}
	}
	if s.Banker != nil {
		st := s.Banker.State()
		if err := ValidateState(st); err != nil {
			return err
		}
		for idx, req := range s.Banker.Requests {
			if err := validateRequest(st, idx, req); err != nil {
				return err
			}
		}
	}
	if s.Memory != nil {
		if err := s.Memory.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemoryScenario) validate() error {
	if len(m.Blocks) == 0 {
		return &InputError{Field: "memory.blocks", Detail: "needs at least one block"}
	}
	for i, size := range m.Blocks {
		if size <= 0 {
			return &InputError{Field: "memory.blocks", Detail: fmt.Sprintf("block %d size must be positive, got %d", i, size)}
		}
	}
	for i, size := range m.Processes {
		if size <= 0 {
			return &InputError{Field: "memory.processes", Detail: fmt.Sprintf("process %d size must be positive, got %d", i, size)}
		}
	}
	for _, name := range m.Strategies {
		if !memory.ValidStrategies[name] {
			return &InputError{Field: "memory.strategies", Detail: fmt.Sprintf("unknown strategy %q", name)}
		}
	}
	return nil
}
