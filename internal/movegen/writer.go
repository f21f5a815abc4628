package movegen

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"deuces/internal/domain"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// WriteAll writes <category>.csv into dir for each category, one group per row. An empty
// categories slice writes every category. Categories are generated concurrently.
func WriteAll(ctx context.Context, dir string, categories []Category, logger *log.Logger) error {
	if len(categories) == 0 {
		categories = Categories
	}
	for _, c := range categories {
		c := c
		if _, ok := generators[c]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, string(c))
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, c := range categories {
		c := c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			moves, err := Generate(c)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, string(c)+".csv")
			if err := writeCSV(path, moves); err != nil {
				return err
			}
			if logger != nil {
				logger.Info("Wrote moves", "category", c, "count", len(moves), "path", path)
			}
			return nil
		})
	}
	return g.Wait()
}

func writeCSV(path string, moves [][]domain.Card) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	row := make([]string, 0, domain.MaxGroupSize)
	for _, group := range moves {
		row = row[:0]
		for _, c := range group {
			row = append(row, c.String())
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}

// ReadCSV loads groups written by WriteAll.
func ReadCSV(path string) ([][]domain.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	moves := make([][]domain.Card, 0, len(records))
	for _, rec := range records {
		group := make([]domain.Card, 0, len(rec))
		for _, field := range rec {
			c, err := domain.ParseCard(field)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			group = append(group, c)
		}
		moves = append(moves, group)
	}
	return moves, nil
}
