package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resource-sim/resource-sim/sim/memory"
)

func TestLoadScenario_ExampleFile(t *testing.T) {
	sc, err := LoadScenario(filepath.Join("..", "testdata", "scenario.yaml"))
	require.NoError(t, err)
	require.NoError(t, sc.Validate())

	require.NotNil(t, sc.Banker)
	assert.Equal(t, Vector{3, 3, 2}, sc.Banker.Available)
	assert.Len(t, sc.Banker.Max, 5)
	assert.Len(t, sc.Banker.Requests, 3)
	assert.Equal(t, 1, sc.Banker.Requests[0].ProcessID)
	assert.Equal(t, Vector{1, 0, 2}, sc.Banker.Requests[0].Resources)

	require.NotNil(t, sc.Memory)
	assert.Equal(t, []int{100, 500, 200, 300, 600}, sc.Memory.Blocks)
	assert.Equal(t, []string{memory.FirstFit, memory.NextFit, memory.BestFit, memory.WorstFit}, sc.Memory.Strategies)
}

func TestLoadScenario_ExampleFile_RunsEndToEnd(t *testing.T) {
	sc, err := LoadScenario(filepath.Join("..", "testdata", "scenario.yaml"))
	require.NoError(t, err)

	report, err := RunSimulation(sc.Banker.State(), sc.Banker.Requests)
	require.NoError(t, err)
	assert.True(t, report.Initial.Safe)

	for _, name := range sc.Memory.Strategies {
		result, err := memory.Allocate(name, memory.BlocksFromSizes(sc.Memory.Blocks), memory.ProcessesFromSizes(sc.Memory.Processes))
		require.NoError(t, err)
		assert.Equal(t, name, result.Algorithm)
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadScenario_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("banker: ["), 0o644))

	_, err := LoadScenario(path)
	assert.Error(t, err)
}

func TestScenarioValidate_EmptyScenario(t *testing.T) {
	sc := &Scenario{}

	err := sc.Validate()

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "scenario", inputErr.Field)
}

func TestScenarioValidate_NegativeEntry(t *testing.T) {
	sc := &Scenario{Banker: &BankerScenario{
		Available:  Vector{1, -1},
		Max:        Matrix{{1, 1}},
		Allocation: Matrix{{0, 0}},
	}}

	err := sc.Validate()

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "available", inputErr.Field)
}

func TestScenarioValidate_AllocationAboveMax(t *testing.T) {
	sc := &Scenario{Banker: &BankerScenario{
		Available:  Vector{1},
		Max:        Matrix{{1}},
		Allocation: Matrix{{2}},
	}}

	err := sc.Validate()

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "allocation", inputErr.Field)
}

func TestScenarioValidate_UnknownStrategy(t *testing.T) {
	sc := &Scenario{Memory: &MemoryScenario{
		Blocks:     []int{100},
		Processes:  []int{50},
		Strategies: []string{"middle-fit"},
	}}

	err := sc.Validate()

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "memory.strategies", inputErr.Field)
}

func TestScenarioValidate_NonPositiveBlock(t *testing.T) {
	sc := &Scenario{Memory: &MemoryScenario{
		Blocks:    []int{100, 0},
		Processes: []int{50},
	}}

	err := sc.Validate()

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "memory.blocks", inputErr.Field)
}
