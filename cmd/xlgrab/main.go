// Package main provides the CLI entry point for xlgrab.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/javajack/xlgrab"
)

var (
	verbose   bool
	filePath  string
	sheetName string
	pretty    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlgrab",
		Short: "Extract spreadsheet cells into JSON or CSV",
		Long: `xlgrab pulls values out of fixed-layout spreadsheets by cell reference
and flattens the extracted records into JSON or CSV tables.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newExtractCmd(), newPairsCmd(), newRangeCmd(), newBatchCmd(), newAppendCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Input spreadsheet path")
	cmd.Flags().StringVarP(&sheetName, "sheet", "s", "", "Sheet name (default: first sheet)")
	cmd.MarkFlagRequired("file")
}

func loadGrid() (*xlgrab.Grid, error) {
	return xlgrab.LoadGrid(filePath, xlgrab.SheetByName(sheetName))
}

func newExtractCmd() *cobra.Command {
	var (
		mappings []string
		csvOut   string
	)
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract named fields by cell address",
		Example: `  xlgrab extract -f order.xlsx --map customer=A1 --map amount=B1
  xlgrab extract -f order.xlsx -s Sheet2 --map total=C10 --csv out.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mapping, err := parseMappingFlags(mappings)
			if err != nil {
				return err
			}

			grid, err := loadGrid()
			if err != nil {
				return err
			}
			rec, err := xlgrab.ExtractMapped(grid, mapping)
			if err != nil {
				return err
			}

			if csvOut != "" {
				table, err := xlgrab.Project([]*xlgrab.Record{rec})
				if err != nil {
					return err
				}
				return table.WriteCSVFile(csvOut)
			}
			return writeJSON(cmd.OutOrStdout(), rec)
		},
	}
	addSourceFlags(cmd)
	cmd.Flags().StringArrayVarP(&mappings, "map", "m", nil, "Field mapping name=ADDRESS (repeatable)")
	cmd.Flags().StringVar(&csvOut, "csv", "", "Write a one-row CSV instead of JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.MarkFlagRequired("map")
	return cmd
}

func newPairsCmd() *cobra.Command {
	var (
		keyCol   string
		valueCol string
		startRow int
		endRow   int
	)
	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "Extract key/value pairs from two columns",
		Example: `  xlgrab pairs -f settings.xlsx --key-col A --value-col B
  xlgrab pairs -f settings.xlsx --key-col A --value-col B --start 2 --end 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := loadGrid()
			if err != nil {
				return err
			}
			rec, err := xlgrab.ExtractColumnPairs(grid, keyCol, valueCol, startRow, endRow)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), rec)
		},
	}
	addSourceFlags(cmd)
	cmd.Flags().StringVar(&keyCol, "key-col", "A", "Column holding keys")
	cmd.Flags().StringVar(&valueCol, "value-col", "B", "Column holding values")
	cmd.Flags().IntVar(&startRow, "start", 1, "First row (1-based)")
	cmd.Flags().IntVar(&endRow, "end", 0, "Last row (1-based, 0 = last grid row)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func newRangeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range A1:C5",
		Short: "Extract a rectangular range as a JSON 2D array",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := xlgrab.ParseRangeRef(args[0])
			if err != nil {
				return err
			}
			grid, err := loadGrid()
			if err != nil {
				return err
			}
			cells, err := xlgrab.ExtractRange(grid, ref.First.String(), ref.Last.String())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), cells)
		},
	}
	addSourceFlags(cmd)
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func newBatchCmd() *cobra.Command {
	var (
		configPath string
		outPath    string
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Extract multiple files into one combined CSV",
		Long: `batch reads a YAML or JSON configuration listing files to extract and
writes all resulting records to a single CSV. A failing file is logged
and skipped; the batch succeeds if at least one file succeeds.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configs, cfgOut, err := loadBatchConfig(configPath)
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = cfgOut
			}
			if outPath == "" {
				return fmt.Errorf("no output path: set --out or 'output' in the config")
			}

			n, diags, err := xlgrab.BatchToCSV(configs, outPath)
			if err != nil {
				return err
			}
			log.Infof("wrote %d records to %s (%d failures)", n, outPath, len(diags))
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Batch configuration file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output CSV path (overrides config)")
	cmd.MarkFlagRequired("config")
	return cmd
}

func newAppendCmd() *cobra.Command {
	var csvPath string
	cmd := &cobra.Command{
		Use:   "append [record.json]",
		Short: "Append a JSON record to a CSV table",
		Long: `append reads one JSON object (from a file, or stdin when no argument is
given) and appends it as a row to the CSV at --csv, creating the file if it
does not exist. New fields extend the header.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			records, err := xlgrab.DecodeRecords(in)
			if err != nil {
				return err
			}
			for _, rec := range records {
				if err := xlgrab.AppendCSV(csvPath, rec); err != nil {
					return err
				}
			}
			log.Infof("appended %d records to %s", len(records), csvPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "Target CSV path")
	cmd.MarkFlagRequired("csv")
	return cmd
}

// parseMappingFlags converts repeated name=ADDRESS flags into a FieldMapping,
// preserving flag order.
func parseMappingFlags(flags []string) (xlgrab.FieldMapping, error) {
	mapping := make(xlgrab.FieldMapping, 0, len(flags))
	for _, f := range flags {
		name, addr, ok := strings.Cut(f, "=")
		if !ok || name == "" || addr == "" {
			return nil, fmt.Errorf("invalid --map %q: want name=ADDRESS", f)
		}
		mapping = append(mapping, xlgrab.Field{Name: name, Address: addr})
	}
	return mapping, nil
}

// loadBatchConfig reads the batch configuration with viper. The format is
// inferred from the file extension (yaml, yml, or json).
func loadBatchConfig(path string) ([]xlgrab.BatchConfig, string, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, "", fmt.Errorf("read config %q: %w", path, err)
	}

	var cfg struct {
		Output string               `mapstructure:"output"`
		Files  []xlgrab.BatchConfig `mapstructure:"files"`
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("parse config %q: %w", path, err)
	}
	if len(cfg.Files) == 0 {
		return nil, "", fmt.Errorf("config %q lists no files", path)
	}
	return cfg.Files, cfg.Output, nil
}

func writeJSON(w io.Writer, v any) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(data))
	return nil
}
