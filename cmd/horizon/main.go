package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/emifrog/horizon/internal/calculation"
	"github.com/emifrog/horizon/internal/config"
	"github.com/emifrog/horizon/internal/output"
	"github.com/emifrog/horizon/internal/params"
)

// simpleCLILogger implements calculation.Logger using the standard log package.
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "horizon",
	Short: "Firefighter pension simulator CLI",
	Long:  "Estimates retirement pension amounts for professional firefighters from a short career profile",
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [profile-file]",
	Short: "Run the pension simulation for a career profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		profile, asOf, err := parser.LoadProfile(args[0])
		if err != nil {
			return err
		}

		regulatory := params.Default()
		if paramsFile, _ := cmd.Flags().GetString("params"); paramsFile != "" {
			regulatory, err = params.LoadFile(paramsFile)
			if err != nil {
				return err
			}
		}

		// --as-of overrides the profile's pinned date; absent both, today.
		if flagAsOf, _ := cmd.Flags().GetString("as-of"); flagAsOf != "" {
			asOf, err = time.Parse("2006-01-02", flagAsOf)
			if err != nil {
				return fmt.Errorf("invalid --as-of date %q: %w", flagAsOf, err)
			}
		}

		engine := calculation.NewEngine(regulatory)
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			engine.SetLogger(simpleCLILogger{})
		}

		result, err := engine.Simulate(profile, asOf)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(format)
		if f == nil {
			return fmt.Errorf("unsupported format: %s", format)
		}
		data, err := f.Format(result)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "horizon %s (commit %s, built %s)\n", version, commit, date)
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			fmt.Fprintln(os.Stdout, bi.Main.Version)
		}
	},
}

func init() {
	simulateCmd.Flags().String("format", "console", "Output format (console, json, csv)")
	simulateCmd.Flags().String("as-of", "", "Simulation date (YYYY-MM-DD), defaults to today")
	simulateCmd.Flags().String("params", "", "Regulatory parameters override file (YAML)")
	simulateCmd.Flags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
