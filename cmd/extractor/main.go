// Command extractor reads the linearized text of a pension statement from
// stdin or a file and writes the normalized record as JSON to stdout. The
// detected provider label is written to stderr as "PROVIDER:<LABEL>" so
// pipelines can observe classification without parsing the payload.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pensionfolio/statement-extractor/internal/domain/statement/export"
	"github.com/pensionfolio/statement-extractor/internal/domain/statement/service"
)

func main() {
	var (
		filePath = flag.String("f", "", "read statement text from this file instead of stdin")
		csvPath  = flag.String("csv", "", "also write flattened accounts as CSV to this path")
		xlsxPath = flag.String("xlsx", "", "also write flattened accounts as XLSX to this path")
		compact  = flag.Bool("compact", false, "emit compact JSON instead of indented")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	// Logs go to stderr: stdout carries only the record.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(logger, *filePath, *csvPath, *xlsxPath, *compact); err != nil {
		logger.Error("extraction failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, filePath, csvPath, xlsxPath string, compact bool) error {
	text, err := readText(filePath)
	if err != nil {
		return err
	}

	svc := service.New(logger, nil)
	provider, rec := svc.Extract(context.Background(), text)

	fmt.Fprintf(os.Stderr, "PROVIDER:%s\n", provider)

	var out []byte
	if compact {
		out, err = json.Marshal(rec)
	} else {
		out, err = json.MarshalIndent(rec, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	fmt.Println(string(out))

	if csvPath != "" {
		data, err := export.AccountsCSV(rec)
		if err != nil {
			return err
		}
		if err := os.WriteFile(csvPath, data, 0o644); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	if xlsxPath != "" {
		data, err := export.AccountsXLSX(rec)
		if err != nil {
			return err
		}
		if err := os.WriteFile(xlsxPath, data, 0o644); err != nil {
			return fmt.Errorf("write xlsx: %w", err)
		}
	}
	return nil
}

func readText(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
