// Command insurebench runs the insurance-charges regression benchmark:
// load, clean, encode, split, train three regressors, score them against the
// holdout and emit the comparison artifacts.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/insurebench/config"
	"github.com/YuminosukeSato/insurebench/pipeline"
	"github.com/YuminosukeSato/insurebench/pkg/log"
)

var (
	cfgFile   string
	dataPath  string
	modelDir  string
	reportDir string
	testSize  float64
	seed      int64
	logLevel  string
	noPlots   bool
)

var rootCmd = &cobra.Command{
	Use:   "insurebench",
	Short: "Benchmark regression models on the insurance charges dataset",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full benchmark pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		// Explicit flags override config file and environment.
		f := cmd.Flags()
		if f.Changed("data") {
			cfg.DataPath = dataPath
		}
		if f.Changed("model-dir") {
			cfg.ModelDir = modelDir
		}
		if f.Changed("report-dir") {
			cfg.ReportDir = reportDir
		}
		if f.Changed("test-size") {
			cfg.TestSize = testSize
		}
		if f.Changed("seed") {
			cfg.Seed = seed
		}
		if f.Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if f.Changed("no-plots") {
			cfg.Plots = !noPlots
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger := log.Default(cfg.LogLevel)
		result, err := pipeline.Run(cfg, logger)
		if err != nil {
			return err
		}

		fmt.Print(result.Table.String())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	runCmd.Flags().StringVar(&dataPath, "data", "", "input CSV path")
	runCmd.Flags().StringVar(&modelDir, "model-dir", "", "directory for model bundles")
	runCmd.Flags().StringVar(&reportDir, "report-dir", "", "directory for metrics and figures")
	runCmd.Flags().Float64Var(&testSize, "test-size", 0.3, "holdout fraction")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "random seed for split and ensemble")
	runCmd.Flags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	runCmd.Flags().BoolVar(&noPlots, "no-plots", false, "skip figure rendering")
	rootCmd.AddCommand(runCmd)
}

func main() {
	// A local .env may carry INSUREBENCH_ variables; absence is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
