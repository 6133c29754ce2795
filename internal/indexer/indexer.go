// Package indexer builds the local bleve index from a documentation tree.
package indexer

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/gofrs/flock"

	"github.com/nhath/docseek/internal/search"
)

const batchSize = 200

var docExtensions = map[string]bool{".md": true, ".mdx": true}

// Result summarises a build
type Result struct {
	Indexed  int
	Skipped  int
	Duration time.Duration
}

// Options controls a build
type Options struct {
	// LockTimeout bounds how long Build waits for another build to finish
	LockTimeout time.Duration
	// Excludes are glob patterns matched against base names
	Excludes []string
}

// Build indexes every markdown document under root into a fresh index at
// indexPath, replacing any previous index there.
func Build(root, indexPath string, opts Options) (*Result, error) {
	start := time.Now()

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot read docs directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	unlock, err := acquireLock(indexPath, opts.LockTimeout)
	if err != nil {
		return nil, err
	}
	defer unlock()

	docs, skipped, err := Collect(root, opts.Excludes)
	if err != nil {
		return nil, err
	}

	tmpPath := indexPath + ".tmp"
	if err := os.RemoveAll(tmpPath); err != nil {
		return nil, err
	}
	idx, err := bleve.New(tmpPath, search.IndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	batch := idx.NewBatch()
	for id, d := range docs {
		if err := batch.Index(id, d); err != nil {
			idx.Close()
			return nil, fmt.Errorf("failed to index %s: %w", id, err)
		}
		if batch.Size() >= batchSize {
			if err := idx.Batch(batch); err != nil {
				idx.Close()
				return nil, fmt.Errorf("failed to write batch: %w", err)
			}
			batch.Reset()
		}
	}
	if batch.Size() > 0 {
		if err := idx.Batch(batch); err != nil {
			idx.Close()
			return nil, fmt.Errorf("failed to write batch: %w", err)
		}
	}
	if err := idx.Close(); err != nil {
		return nil, err
	}

	// Swap the new index in place
	if err := os.RemoveAll(indexPath); err != nil {
		return nil, err
	}
	if err := os.Rename(tmpPath, indexPath); err != nil {
		return nil, fmt.Errorf("failed to install index: %w", err)
	}

	res := &Result{Indexed: len(docs), Skipped: skipped, Duration: time.Since(start)}
	log.Printf("indexer: indexed %d documents (%d skipped) in %s", res.Indexed, res.Skipped, res.Duration)
	return res, nil
}

// Collect walks root and parses every document, keyed by relative file path
func Collect(root string, excludes []string) (map[string]search.Hit, int, error) {
	docs := make(map[string]search.Hit)
	skipped := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || name == "node_modules") {
				return filepath.SkipDir
			}
			return nil
		}
		if !docExtensions[strings.ToLower(filepath.Ext(name))] || excluded(name, excludes) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		doc, ok := ParseDocument(filepath.ToSlash(rel), string(raw))
		if !ok {
			skipped++
			return nil
		}
		docs[filepath.ToSlash(rel)] = doc
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return docs, skipped, nil
}

func excluded(name string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}

func acquireLock(indexPath string, timeout time.Duration) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(indexPath), 0o755); err != nil {
		return nil, err
	}
	lockPath := indexPath + ".lock"
	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return nil, fmt.Errorf("cannot acquire index lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("another index build is in progress (lock: %s)", lockPath)
		}
		time.Sleep(100 * time.Millisecond)
	}
}

var (
	importLine  = regexp.MustCompile(`(?m)^\s*(import|export)\s.*$`)
	jsxTag      = regexp.MustCompile(`</?[A-Z][A-Za-z0-9.]*[^>]*>`)
	htmlComment = regexp.MustCompile(`(?s)<!--.*?-->`)
	mdLink      = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`)
	headingMark = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	emphasis    = regexp.MustCompile("[*_`~]+")
	firstH1     = regexp.MustCompile(`(?m)^#\s+(.+)$`)
)
