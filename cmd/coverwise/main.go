package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/coverwise/coverwise/internal/config"
	"github.com/coverwise/coverwise/internal/hsa"
	"github.com/coverwise/coverwise/internal/magi"
	"github.com/coverwise/coverwise/internal/output"
	"github.com/coverwise/coverwise/internal/recommend"
)

// zerologCLILogger implements recommend.Logger on top of zerolog.
type zerologCLILogger struct {
	log zerolog.Logger
}

func (l zerologCLILogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func newDebugLogger() zerologCLILogger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerologCLILogger{
		log: zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger(),
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "coverwise %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "coverwise",
	Short: "Household supplemental coverage advisor",
	Long:  "Supplemental insurance recommendations, ACA subsidy optimization and HSA planning for households",
}

// loadInput parses and validates the household input file.
func loadInput(inputFile string) *config.Input {
	parser := config.NewInputParser()
	input, err := parser.LoadFromFile(inputFile)
	if err != nil {
		log.Fatal(err)
	}
	return input
}

// render writes the report with the formatter named by --format.
func render(cmd *cobra.Command, report *output.Report) {
	outputFormat, _ := cmd.Flags().GetString("format")
	f := output.GetFormatterByName(outputFormat)
	if f == nil {
		log.Fatalf("unknown output format %q (known: %v)", outputFormat, output.FormatterNames())
	}
	data, err := f.Format(report)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(data)
}

var recommendCmd = &cobra.Command{
	Use:   "recommend [input-file]",
	Short: "Recommend supplemental coverage for a household",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := loadInput(args[0])
		if showAll, _ := cmd.Flags().GetBool("show-all"); showAll {
			input.Preferences.ShowAll = true
		}

		engine := recommend.NewEngine()
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			engine.SetLogger(newDebugLogger())
		}
		set, err := engine.Recommend(input.Household, input.PrimaryPlan, input.Preferences)
		if err != nil {
			log.Fatal(err)
		}

		render(cmd, &output.Report{Recommendations: set})
	},
}

var magiCmd = &cobra.Command{
	Use:   "magi [input-file]",
	Short: "Analyze ACA subsidy position and MAGI reduction strategies",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := loadInput(args[0])
		if input.MAGI == nil {
			log.Fatal("input file has no magi section")
		}

		analyzer := magi.NewAnalyzer()
		analysis, err := analyzer.Analyze(*input.MAGI)
		if err != nil {
			log.Fatal(err)
		}

		render(cmd, &output.Report{MAGI: analysis})
	},
}

var hsaCmd = &cobra.Command{
	Use:   "hsa [input-file]",
	Short: "Optimize HSA contributions and project balances",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := loadInput(args[0])
		if input.HSA == nil {
			log.Fatal("input file has no hsa section")
		}

		optimizer := hsa.NewOptimizer()
		analysis, err := optimizer.Optimize(*input.HSA)
		if err != nil {
			log.Fatal(err)
		}

		render(cmd, &output.Report{HSA: analysis})
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [input-file]",
	Short: "Run every analysis the input file configures",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := loadInput(args[0])
		if showAll, _ := cmd.Flags().GetBool("show-all"); showAll {
			input.Preferences.ShowAll = true
		}
		report := &output.Report{}

		engine := recommend.NewEngine()
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			engine.SetLogger(newDebugLogger())
		}
		set, err := engine.Recommend(input.Household, input.PrimaryPlan, input.Preferences)
		if err != nil {
			log.Fatal(err)
		}
		report.Recommendations = set

		if input.MAGI != nil {
			analysis, err := magi.NewAnalyzer().Analyze(*input.MAGI)
			if err != nil {
				log.Fatal(err)
			}
			report.MAGI = analysis
		}
		if input.HSA != nil {
			analysis, err := hsa.NewOptimizer().Optimize(*input.HSA)
			if err != nil {
				log.Fatal(err)
			}
			report.HSA = analysis
		}

		render(cmd, report)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a household input file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(inputFile); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Input file %s is valid\n", inputFile)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{recommendCmd, magiCmd, hsaCmd, analyzeCmd} {
		cmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
		cmd.Flags().Bool("debug", false, "Enable debug output for detailed scoring")
	}
	recommendCmd.Flags().Bool("show-all", false, "Include low-priority recommendations in the output")
	analyzeCmd.Flags().Bool("show-all", false, "Include low-priority recommendations in the output")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(magiCmd)
	rootCmd.AddCommand(hsaCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
