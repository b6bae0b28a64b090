package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/resource-sim/resource-sim/sim"
	"github.com/resource-sim/resource-sim/sim/memory"
)

var (
	// CLI flags shared by the subcommands
	scenarioPath string // Path to the YAML scenario file
	logLevel     string // Log verbosity level
	strategy     string // Placement strategy for the memory subcommand ("all" runs every strategy)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "resource-sim",
	Short: "Simulator for OS resource-management algorithms",
}

// loadScenario sets up logging and loads the validated scenario file.
// Shared preamble of both subcommands.
func loadScenario() *sim.Scenario {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)

	if scenarioPath == "" {
		logrus.Fatalf("Scenario file not provided. Exiting simulation.")
	}
	scenario, err := sim.LoadScenario(scenarioPath)
	if err != nil {
		logrus.Fatalf("Unable to read scenario: %v", err)
	}
	if err := scenario.Validate(); err != nil {
		logrus.Fatalf("Invalid scenario: %v", err)
	}
	return scenario
}

// bankerCmd runs the Banker's-algorithm simulation from the scenario file
var bankerCmd = &cobra.Command{
	Use:   "banker",
	Short: "Run the Banker's algorithm safety check and request replay",
	Run: func(cmd *cobra.Command, args []string) {
		scenario := loadScenario()
		if scenario.Banker == nil {
			logrus.Fatalf("Scenario %s has no banker section", scenarioPath)
		}

		report, err := sim.RunSimulation(scenario.Banker.State(), scenario.Banker.Requests)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		report.Print()
	},
}

// memoryCmd runs the block-allocation strategies from the scenario file
var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Run contiguous memory-block allocation strategies",
	Run: func(cmd *cobra.Command, args []string) {
		scenario := loadScenario()
		if scenario.Memory == nil {
			logrus.Fatalf("Scenario %s has no memory section", scenarioPath)
		}

		strategies := scenario.Memory.Strategies
		if strategy != "all" {
			strategies = []string{strategy}
		} else if len(strategies) == 0 {
			strategies = []string{memory.FirstFit, memory.NextFit, memory.BestFit, memory.WorstFit}
		}

		blocks := memory.BlocksFromSizes(scenario.Memory.Blocks)
		processes := memory.ProcessesFromSizes(scenario.Memory.Processes)
		for _, name := range strategies {
			result, err := memory.Allocate(name, blocks, processes)
			if err != nil {
				logrus.Fatalf("Allocation failed: %v", err)
			}
			result.Print()
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&scenarioPath, "scenario", "", "Path to the YAML scenario file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	memoryCmd.Flags().StringVar(&strategy, "strategy", "all", "Placement strategy (first-fit, next-fit, best-fit, worst-fit, all)")

	rootCmd.AddCommand(bankerCmd)
	rootCmd.AddCommand(memoryCmd)
}
