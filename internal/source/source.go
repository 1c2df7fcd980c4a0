// Package source reads numeric samples from line-oriented input.
package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// Stats counts what a Read call saw.
type Stats struct {
	Lines   int
	Values  int
	Skipped int
}

// Read parses one float per line from r and hands every value to fn. Blank
// lines and lines starting with '#' are ignored; malformed and non-finite
// values are logged and skipped. Reading stops at the first error returned by
// fn or when ctx is cancelled.
func Read(ctx context.Context, r io.Reader, log *slog.Logger, fn func(float64) error) (Stats, error) {
	var st Stats
	s := bufio.NewScanner(r)
	for s.Scan() {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		st.Lines++

		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		x, err := strconv.ParseFloat(text, 64)
		if err == nil && (math.IsNaN(x) || math.IsInf(x, 0)) {
			err = fmt.Errorf("non-finite value %q", text)
		}
		if err != nil {
			st.Skipped++
			log.Warn("skipping line", "line", st.Lines, "error", err)
			continue
		}

		st.Values++
		if err := fn(x); err != nil {
			return st, fmt.Errorf("line %d: %w", st.Lines, err)
		}
	}
	if err := s.Err(); err != nil {
		return st, fmt.Errorf("reading input: %w", err)
	}
	return st, nil
}
