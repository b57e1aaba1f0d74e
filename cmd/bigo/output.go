package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/alexshd/bigo"
)

func writeResult(w io.Writer, format string, best *bigo.Class, table *bigo.FitTable) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(table.Summarize(best)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(table.Summarize(best)); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		_, err := io.WriteString(w, bigo.Report(best, table))
		return err
	}
}
