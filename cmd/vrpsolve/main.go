// Command vrpsolve is a thin driver: read a JSON problem file and an
// optional YAML configuration file, run solver.Solve, print the result as
// JSON. Input/output dialect design is explicitly out of the core's scope
// (§1 Non-goals); this is the minimal wiring needed to exercise it.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/routeforge/vrp/config"
	"github.com/routeforge/vrp/solver"
)

var (
	problemPath string
	configPath  string
	seed        int64
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "vrpsolve",
	Short: "Vehicle routing metaheuristic solver",
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a VRP problem document and print the result as JSON",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		problem, err := LoadProblem(problemPath)
		if err != nil {
			logrus.Fatalf("load problem: %v", err)
		}

		cfg := config.Default()
		if configPath != "" {
			cfg, err = config.Load(configPath)
			if err != nil {
				logrus.Fatalf("load config: %v", err)
			}
		}

		env := solver.NewEnvironment(seed, cfg)
		out, err := solver.Solve(problem, cfg, env)
		if err != nil {
			logrus.Fatalf("solve: %v", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			logrus.Fatalf("encode result: %v", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	solveCmd.Flags().StringVar(&problemPath, "problem", "", "Path to the JSON problem document")
	solveCmd.Flags().StringVar(&configPath, "config", "", "Path to an optional YAML configuration file")
	solveCmd.Flags().Int64Var(&seed, "seed", 1, "PRNG seed")
	solveCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
	_ = solveCmd.MarkFlagRequired("problem")

	rootCmd.AddCommand(solveCmd)
}

func main() {
	Execute()
}
