package main

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/paydoc/payfix/internal/config"
	"github.com/paydoc/payfix/internal/docstat"
	"github.com/paydoc/payfix/internal/header"
	"github.com/paydoc/payfix/internal/parser"
	"github.com/paydoc/payfix/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outDir  string
	jobs    int
	verbose bool
)

var fixCmd = &cobra.Command{
	Use:   "fix FILE...",
	Short: "Repair one or more documents and write .fixed.md files",
	Long: `The fix command parses each input (markdown, text, PDF, DOCX, HTML, or
CSV), repairs the payslip header, cleans the first table, and writes
<stem>.fixed.md into the output directory. Files are processed
concurrently; a failure in one file does not stop the others.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFix(args)
	},
}

func init() {
	fixCmd.Flags().StringVar(&outDir, "out", ".", "output directory for fixed files")
	fixCmd.Flags().IntVar(&jobs, "jobs", 4, "number of files to process concurrently")
	fixCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log per-file detection details")
}

func runFix(paths []string) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	policy, err := config.LoadPolicy(policyFile)
	if err != nil {
		return err
	}
	if jobs < 1 {
		jobs = 1
	}

	var (
		wg     sync.WaitGroup
		sem    = make(chan struct{}, jobs)
		mu     sync.Mutex
		failed int
	)
	for _, path := range paths {
		sem <- struct{}{}
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := fixFile(log, path, policy); err != nil {
				log.Error("fix failed", "file", path, "error", err)
				mu.Lock()
				failed++
				mu.Unlock()
			}
		}(path)
	}
	wg.Wait()

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}

func fixFile(log *slog.Logger, path string, policy header.Policy) error {
	if !parser.IsSupportedExtension(path) {
		return fmt.Errorf("unsupported file type: %s", path)
	}
	p, err := parser.ForFile(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	text, err := p.Parse(f, path)
	f.Close()
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	start := time.Now()
	res := pipeline.Fix(text, path, policy)
	outPath, err := pipeline.WriteFixed(outDir, path, res.Text)
	if err != nil {
		return err
	}

	log.Info("wrote",
		"output", outPath,
		"fields_detected", res.Fields.Count(),
		"rows_removed", res.RowsRemoved,
		"duration_us", time.Since(start).Microseconds(),
	)
	if verbose {
		for _, fld := range header.FieldOrder {
			if v := res.Fields.Get(fld); v != "" {
				log.Info("field", "key", string(fld), "value", v)
			}
		}
		report := docstat.Analyze(res.Text)
		log.Info("structure",
			"headings", report.Headings,
			"tables", report.Tables,
			"table_rows", report.TableRows,
			"bytes", report.Bytes,
		)
	}
	return nil
}
