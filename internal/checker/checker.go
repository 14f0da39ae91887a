// Package checker scans a directory of captured RunAgentInput payload
// files and validates each one against the protocol schema model,
// recording outcomes so unchanged files are not re-checked.
package checker

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/MimeLyc/agui-go/internal/persistence"
	"github.com/MimeLyc/agui-go/pkg/core"
	"github.com/MimeLyc/agui-go/pkg/log"
)

// Result is the outcome of checking one payload file.
//
// Path: payload file path
// ThreadID/RunID: envelope identifiers, set when the payload is valid
// Valid: whether the payload passed schema validation
// Violation: the schema violation message for invalid payloads
// Skipped: the file version was already recorded and was not re-read
type Result struct {
	Path      string
	ThreadID  string
	RunID     string
	Valid     bool
	Violation string
	Skipped   bool
}

// Checker validates payload files with bounded concurrency.
type Checker struct {
	store       *persistence.SQLiteStore
	concurrency int
}

// New creates a checker. The store may be nil, in which case every file
// is checked on every scan and nothing is recorded.
func New(store *persistence.SQLiteStore, concurrency int) *Checker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Checker{
		store:       store,
		concurrency: concurrency,
	}
}

// CheckDir validates every .json file under dir. Schema violations are
// reported per file in the results; only infrastructure failures
// (unreadable files, store errors) abort the scan.
func (c *Checker) CheckDir(ctx context.Context, dir string) ([]Result, error) {
	paths, err := findPayloadFiles(dir)
	if err != nil {
		return nil, err
	}
	log.Info("Checking %d payload files in %s", len(paths), dir)

	results := make([]Result, len(paths))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(c.concurrency)
	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			result, err := c.checkFile(ctx, path)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var valid, invalid, skipped int
	for _, result := range results {
		switch {
		case result.Skipped:
			skipped++
		case result.Valid:
			valid++
		default:
			invalid++
		}
	}
	log.Info("Scan of %s done: %d valid, %d invalid, %d skipped", dir, valid, invalid, skipped)
	return results, nil
}

func (c *Checker) checkFile(ctx context.Context, path string) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("stat payload %s: %w", path, err)
	}
	modifiedAt := info.ModTime().UnixNano()

	if c.store != nil {
		seen, err := c.store.HasResult(ctx, path, modifiedAt)
		if err != nil {
			return Result{}, err
		}
		if seen {
			return Result{Path: path, Skipped: true}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read payload %s: %w", path, err)
	}

	result := Result{Path: path}
	input, verr := core.ParseRunAgentInput(data)
	if verr != nil {
		result.Violation = verr.Error()
		log.Warn("Payload %s is invalid: %v", path, verr)
	} else {
		result.Valid = true
		result.ThreadID = input.ThreadID
		result.RunID = input.RunID
		log.Debug("Payload %s is valid (thread %s, run %s)", path, input.ThreadID, input.RunID)
	}

	if c.store != nil {
		record := persistence.ValidationRecord{
			Path:       path,
			ModifiedAt: modifiedAt,
			ThreadID:   result.ThreadID,
			RunID:      result.RunID,
			Valid:      result.Valid,
			Violation:  result.Violation,
		}
		if err := c.store.SaveResult(ctx, record); err != nil {
			return Result{}, err
		}
	}
	return result, nil
}

func findPayloadFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".json") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk payload dir %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}
