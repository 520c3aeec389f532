// Command logtemplate mines log templates from a batch of raw log lines:
// parse the header, infer templates, write the per-line and per-template
// dumps, or serve the engine over HTTP / explore it in a REPL.
package main

import (
	"bufio"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/n0madic/logtemplate/engine"
	"github.com/n0madic/logtemplate/eval"
	"github.com/n0madic/logtemplate/header"
	"github.com/n0madic/logtemplate/internal/api"
	"github.com/n0madic/logtemplate/internal/config"
	"github.com/n0madic/logtemplate/internal/repl"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "logtemplate",
		Short: "Unsupervised log template mining",
	}
	root.AddCommand(mineCmd(), evalCmd(), serveCmd(), replCmd())
	return root
}

func mineCmd() *cobra.Command {
	var (
		configPath   string
		inputPath    string
		outLinesPath string
		outTemplates string
	)

	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Parse a log file's header, infer templates, and write both dumps",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			rawLines, err := readLines(inputPath)
			if err != nil {
				return err
			}

			if cfg.LogFormat == "" {
				return fmt.Errorf("mine: config %s has no logFormat", configPath)
			}
			hp, err := header.New(cfg.LogFormat)
			if err != nil {
				return err
			}

			records, dropped := hp.Parse(rawLines)
			if dropped > 0 {
				log.Printf("mine: dropped %d lines that did not match logFormat", dropped)
			}

			contents := make([]string, len(records))
			for i, r := range records {
				contents[i] = r.Content
			}

			results, err := engine.Mine(contents, cfg.Engine)
			if err != nil {
				return fmt.Errorf("mine: %w", err)
			}

			assignment := eval.Assignment(results)
			// assignment is keyed by the line's position in contents (0-based);
			// re-key it onto the header parser's 1-based LineId.
			byLineID := make(map[int]string, len(assignment))
			for idx, template := range assignment {
				if idx < 0 || idx >= len(records) {
					continue
				}
				byLineID[records[idx].LineID] = template
			}

			if err := writeLinesTo(outLinesPath, records, byLineID); err != nil {
				return err
			}
			if err := writeTemplatesTo(outTemplates, results); err != nil {
				return err
			}

			fmt.Printf("mined %d templates from %d lines (%d dropped)\n", len(results), len(records), dropped)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to the run's YAML config (required)")
	cmd.Flags().StringVar(&inputPath, "input", "", "path to the raw log file (required)")
	cmd.Flags().StringVar(&outLinesPath, "out-lines", "lines.csv", "per-line CSV output path")
	cmd.Flags().StringVar(&outTemplates, "out-templates", "templates.txt", "per-template flat file output path")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func evalCmd() *cobra.Command {
	var linesPath, truthPath, column string

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Grade a per-line CSV's Template column against a ground-truth column",
		RunE: func(cmd *cobra.Command, args []string) error {
			predicted, err := readAssignmentCSV(linesPath, "Template")
			if err != nil {
				return err
			}
			reference, err := readAssignmentCSV(truthPath, column)
			if err != nil {
				return err
			}

			report := eval.Grade(predicted, reference)
			fmt.Printf("accuracy=%.4f correct=%d total=%d\n", report.Accuracy, report.Correct, report.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&linesPath, "lines", "", "per-line CSV written by 'mine' (required)")
	cmd.Flags().StringVar(&truthPath, "truth", "", "ground-truth CSV (required)")
	cmd.Flags().StringVar(&column, "column", "EventId", "ground-truth column name")
	_ = cmd.MarkFlagRequired("lines")
	_ = cmd.MarkFlagRequired("truth")

	return cmd
}

func serveCmd() *cobra.Command {
	var addr, configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the mining engine over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			var defaultCfg engine.Config
			if configPath != "" {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				defaultCfg = cfg.Engine
			}

			log.Printf("logtemplate serve: listening on %s", addr)
			return http.ListenAndServe(addr, api.NewRouter(defaultCfg))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML config seeding default dataset/thresholds for requests that omit them")
	return cmd
}

func replCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively paste lines and see how they cluster",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := engine.Config{Dataset: "HDFS", DownThreshold: 2}
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded.Engine
			}
			return repl.Run(cfg, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML config; defaults to HDFS/threshold 2")
	return cmd
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- operator-provided input path
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
