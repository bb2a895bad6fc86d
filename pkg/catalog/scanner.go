package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var defaultScanWorkers uint = 4

// scanJob is one leaf directory to enumerate for log files.
type scanJob struct {
	dir       string
	backend   Backend
	container string
}

// scanClaude walks the flat-per-project tree: one level of project
// directories, each holding session logs directly. Dot-prefixed directories
// (.timelines and friends) are reserved and skipped.
func (c *Catalog) scanClaude(root string) ([]ConversationMeta, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading claude projects directory %s: %w", root, err)
	}

	var jobs []scanJob
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		jobs = append(jobs, scanJob{
			dir:       filepath.Join(root, entry.Name()),
			backend:   BackendClaude,
			container: entry.Name(),
		})
	}

	return c.scanDirs(jobs), nil
}

// scanCodex walks the fixed year/month/day nesting. Stray files at any of
// the date levels are skipped; unreadable intermediate directories are
// skipped rather than failing the scan.
func (c *Catalog) scanCodex(root string) ([]ConversationMeta, error) {
	years, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading codex sessions directory %s: %w", root, err)
	}

	var jobs []scanJob
	for _, year := range years {
		if !year.IsDir() {
			continue
		}
		yearPath := filepath.Join(root, year.Name())

		months, err := os.ReadDir(yearPath)
		if err != nil {
			continue
		}
		for _, month := range months {
			if !month.IsDir() {
				continue
			}
			monthPath := filepath.Join(yearPath, month.Name())

			days, err := os.ReadDir(monthPath)
			if err != nil {
				continue
			}
			for _, day := range days {
				if !day.IsDir() {
					continue
				}
				jobs = append(jobs, scanJob{
					dir:     filepath.Join(monthPath, day.Name()),
					backend: BackendCodex,
				})
			}
		}
	}

	return c.scanDirs(jobs), nil
}

// scanDirs fans the leaf-directory scans out to a small worker pool.
// Traversal order is irrelevant: List sorts the merged result, so the
// parallelism is never observable in output ordering.
func (c *Catalog) scanDirs(jobs []scanJob) []ConversationMeta {
	workers := c.workers
	if workers == 0 {
		workers = defaultScanWorkers
	}
	if n := uint(len(jobs)); n < workers {
		workers = n
	}
	if workers == 0 {
		return nil
	}

	queue := make(chan scanJob)

	var mu sync.Mutex
	var metas []ConversationMeta

	var wg sync.WaitGroup
	wg.Add(int(workers))
	for range workers {
		go func() {
			defer wg.Done()
			for job := range queue {
				found := scanLogDir(job)
				mu.Lock()
				metas = append(metas, found...)
				mu.Unlock()
			}
		}()
	}

	for _, job := range jobs {
		queue <- job
	}
	close(queue)
	wg.Wait()

	return metas
}

// scanLogDir enumerates one leaf directory. Unreadable directories and
// malformed or vanished files are skipped individually so a single corrupt
// record never aborts a full listing.
func scanLogDir(job scanJob) []ConversationMeta {
	entries, err := os.ReadDir(job.dir)
	if err != nil {
		return nil
	}

	var metas []ConversationMeta
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != logExt {
			continue
		}

		meta, err := extractMeta(filepath.Join(job.dir, entry.Name()), job.backend, job.container)
		if err != nil {
			continue
		}
		metas = append(metas, meta)
	}

	return metas
}
