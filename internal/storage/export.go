package storage

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
)

// csvRun is the exported column layout.
type csvRun struct {
	ID         int64  `csv:"id"`
	Difficulty string `csv:"difficulty"`
	Score      int    `csv:"score"`
	Outcome    string `csv:"outcome"`
	Ticks      uint64 `csv:"ticks"`
	Seed       int64  `csv:"seed"`
	CreatedAt  string `csv:"created_at"`
}

// WriteCSV writes runs with a header row.
func WriteCSV(w io.Writer, runs []Run) error {
	records := make([]csvRun, 0, len(runs))
	for _, r := range runs {
		created := ""
		if !r.CreatedAt.IsZero() {
			created = r.CreatedAt.UTC().Format(time.RFC3339)
		}
		records = append(records, csvRun{
			ID:         r.ID,
			Difficulty: r.Difficulty,
			Score:      r.Score,
			Outcome:    r.Outcome,
			Ticks:      r.Ticks,
			Seed:       r.Seed,
			CreatedAt:  created,
		})
	}
	if err := gocsv.Marshal(&records, w); err != nil {
		return fmt.Errorf("storage: write csv: %w", err)
	}
	return nil
}

// ExportCSV writes the full run history.
func (s *Store) ExportCSV(w io.Writer) error {
	runs, err := s.AllRuns()
	if err != nil {
		return err
	}
	return WriteCSV(w, runs)
}
