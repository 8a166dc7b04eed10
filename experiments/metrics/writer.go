package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gamepack/game"
	"golang.org/x/exp/slices"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by the current timestamp.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// FormatResult renders a result as "player=score" pairs sorted by player.
func FormatResult(result game.Result) string {
	if result == nil {
		return ""
	}
	pairs := make([]string, 0, len(result))
	for player, score := range result {
		pairs = append(pairs, fmt.Sprintf("%s=%s", player, strconv.FormatFloat(score, 'g', -1, 64)))
	}
	slices.Sort(pairs)
	return strings.Join(pairs, ";")
}

func (w *Writer) WriteMatchRecords(records []MatchMetric) error {
	path := filepath.Join(w.baseDir, "match_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create match records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"id", "variant", "starting_player", "plies", "complete", "unsupported", "result", "start_time", "end_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write match records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.ID.String(),
			record.Variant,
			string(record.StartingPlayer),
			strconv.Itoa(record.Plies),
			strconv.FormatBool(record.Complete),
			strconv.FormatBool(record.Unsupported),
			FormatResult(record.Result),
			record.StartTime.Format(time.RFC3339Nano),
			record.EndTime.Format(time.RFC3339Nano),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write match record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush match records: %w", err)
	}
	return nil
}

func (w *Writer) WriteSummary(variant string, summary Summary) error {
	path := filepath.Join(w.baseDir, "summary.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	rows := [][]string{
		{"variant", "goroutines", "duration", "matches", "plies", "complete", "unsupported", "failed"},
		{
			variant,
			strconv.Itoa(summary.Goroutines),
			summary.Duration.String(),
			strconv.Itoa(summary.Matches),
			strconv.Itoa(summary.Plies),
			strconv.Itoa(summary.Complete),
			strconv.Itoa(summary.Unsupported),
			strconv.Itoa(summary.Failed),
		},
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
