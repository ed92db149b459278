// Command linprog reads a textual linear-program description, solves it
// with the two-phase simplex engine, and writes the solution to a file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"linprog/parser"
	"linprog/printer"
	"linprog/simplex"
)

var (
	inputPath  string
	outputPath string
	display    bool
)

var rootCmd = &cobra.Command{
	Use:   "linprog",
	Short: "Two-phase simplex linear program solver",
	Long:  `linprog parses an LP description, solves it with the revised two-phase simplex method, and writes the resulting status, assignment and objective to a file.`,
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&inputPath, "input", "", "path to the LP description file")
	rootCmd.Flags().StringVar(&outputPath, "output", "", "path to write the solution to")
	rootCmd.Flags().BoolVar(&display, "display", false, "also echo the solution to stdout")
	rootCmd.MarkFlagRequired("input")
	rootCmd.MarkFlagRequired("output")
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("linprog: building logger: %w", err)
	}
	defer logger.Sync()

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("linprog: reading %s: %w", inputPath, err)
	}

	problem, err := parser.Parse(string(raw))
	if err != nil {
		return fmt.Errorf("linprog: parsing %s: %w", inputPath, err)
	}

	if display {
		printer.Problem(os.Stdout, problem)
	}

	sol := simplex.Solve(problem, simplex.WithLogger(logger))

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("linprog: creating %s: %w", outputPath, err)
	}
	defer out.Close()
	printer.Solution(out, sol)

	if display {
		printer.Solution(os.Stdout, sol)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
