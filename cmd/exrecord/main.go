// Package main provides the CLI entry point for exrecord-go.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exrecord-go/internal/logging"
	"github.com/ukaji3/exrecord-go/pkg/exrecord"
	"github.com/ukaji3/exrecord-go/pkg/exrecord/metadata"
	"github.com/ukaji3/exrecord-go/pkg/exrecord/output"
	"github.com/ukaji3/exrecord-go/pkg/exrecord/parser"
)

var (
	schemaPath    string
	outputPath    string
	pretty        bool
	sheetName     string
	skipBlankRows bool
	allowInvalid  bool
	logLevel      string
	logFormat     string
)

// errInvalid marks a conversion that finished with validation problems.
var errInvalid = errors.New("worksheet has validation problems")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "exrecord",
		Short: "Convert worksheet rows into typed records",
		Long: `exrecord-go reads a worksheet into records described by a schema,
coercing each cell to its declared type and reporting data problems.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(cmd.ErrOrStderr(), logLevel, logFormat)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text, json")

	convertCmd := &cobra.Command{
		Use:   "convert [input.xlsx]",
		Short: "Convert a worksheet to JSON records",
		Args:  cobra.ExactArgs(1),
		RunE:  runConvert,
	}
	convertCmd.Flags().StringVar(&schemaPath, "schema", "", "YAML schema describing the record (required)")
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	convertCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	convertCmd.Flags().StringVar(&sheetName, "sheet", "", "Worksheet name, overriding the schema")
	convertCmd.Flags().BoolVar(&skipBlankRows, "skip-blank-rows", false, "Skip rows with no mapped content, overriding the schema")
	convertCmd.Flags().BoolVar(&allowInvalid, "allow-invalid", false, "Exit successfully even when validation problems are reported")
	// Only fails for an undefined flag; schema is defined above.
	_ = convertCmd.MarkFlagRequired("schema")

	sheetsCmd := &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "List the worksheets of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runSheets,
	}

	rootCmd.AddCommand(convertCmd, sheetsCmd)
	return rootCmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	log := logging.ForRun(slog.Default(), "input", inputPath)

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	schema, err := metadata.LoadSchema(schemaPath)
	if err != nil {
		return err
	}

	opts := exrecord.Options{
		Worksheet: sheetName,
		Logger:    log,
	}
	if cmd.Flags().Changed("skip-blank-rows") {
		opts.SkipBlankRows = &skipBlankRows
	}

	log.Info("conversion started", "schema", schemaPath)
	result, err := exrecord.ReadSchemaFile(inputPath, schema, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	log.Info("conversion finished", "records", result.Len(), "problems", len(result.Problems()))

	jsonData, err := output.ToJSON(result, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	if !result.IsValid() && !allowInvalid {
		for _, p := range result.Problems() {
			log.Warn(p.Message, "worksheet", p.Worksheet, "cell", p.Cell)
		}
		return errInvalid
	}
	return nil
}

func runSheets(cmd *cobra.Command, args []string) error {
	wb, err := parser.OpenFile(args[0])
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	sheets, err := wb.Sheets()
	if err != nil {
		return err
	}

	jsonData, err := output.ToJSON(sheets, true)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
