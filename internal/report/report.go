// Package report writes tracker summaries for humans or machines.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/axiomhq/p2/internal/tracker"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	Text  = "text"
	Table = "table"
	YAML  = "yaml"
)

// Write renders summaries to w in the given format.
func Write(w io.Writer, format string, summaries []tracker.Summary) error {
	switch format {
	case Text:
		return writeText(w, summaries)
	case Table:
		return writeTable(w, summaries)
	case YAML:
		return writeYAML(w, summaries)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// writeText prints one header line per source followed by the single-quantile
// estimates on one line and the multi-quantile estimates on the next.
func writeText(w io.Writer, summaries []tracker.Summary) error {
	for _, s := range summaries {
		if _, err := fmt.Fprintf(w, "%s: %d samples, %d skipped (%s)\n", s.Source, s.Count, s.Skipped, s.Phase); err != nil {
			return err
		}
		lines := [][]float64{make([]float64, 0, len(s.Rows)), make([]float64, 0, len(s.Rows))}
		var exact []float64
		for _, r := range s.Rows {
			lines[0] = append(lines[0], r.Single)
			lines[1] = append(lines[1], r.Multi)
			if r.Exact != nil {
				exact = append(exact, *r.Exact)
			}
		}
		if len(exact) > 0 {
			lines = append(lines, exact)
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, joinFloats(line)); err != nil {
				return err
			}
		}
	}
	return nil
}

func joinFloats(vs []float64) string {
	out := make([]byte, 0, 16*len(vs))
	for i, v := range vs {
		if i > 0 {
			out = append(out, ' ')
		}
		out = strconv.AppendFloat(out, v, 'g', -1, 64)
	}
	return string(out)
}

func writeTable(w io.Writer, summaries []tracker.Summary) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Source", "Count", "Quantile", "Single", "Multi", "Exact"})
	table.SetAutoMergeCells(true)
	table.SetRowLine(true)
	for _, s := range summaries {
		for _, r := range s.Rows {
			exact := "-"
			if r.Exact != nil {
				exact = format(*r.Exact)
			}
			table.Append([]string{
				s.Source,
				strconv.Itoa(s.Count),
				format(r.Quantile),
				format(r.Single),
				format(r.Multi),
				exact,
			})
		}
	}
	table.Render()
	return nil
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func writeYAML(w io.Writer, summaries []tracker.Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(summaries); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
