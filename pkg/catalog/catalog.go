// Package catalog discovers and describes coding-agent conversation logs on
// disk. Two backends are supported: Claude Code keeps one directory per
// project under ~/.claude/projects with the session logs directly inside,
// while Codex nests its logs under ~/.codex/sessions/<year>/<month>/<day>.
//
// There is no index. Every operation re-reads the filesystem, so a returned
// ConversationMeta is a snapshot of what existed at scan time.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Backend identifies which record tree a conversation log came from.
type Backend string

const (
	BackendClaude Backend = "claude"
	BackendCodex  Backend = "codex"
)

const (
	claudeDirName = ".claude"
	codexDirName  = ".codex"

	// Anchor directory names the reclamation walk never deletes.
	claudeSubdir = "projects"
	codexSubdir  = "sessions"

	logExt = ".jsonl"
)

// ConversationMeta is the uniform per-log metadata contract shared by both
// backends. ContainerName is only set for Claude logs (the project directory
// name); SessionID is best-effort, recovered from the first line of the file.
type ConversationMeta struct {
	ID            string  `json:"id"`
	Backend       Backend `json:"backend"`
	FilePath      string  `json:"filePath"`
	FileSize      int64   `json:"fileSize"`
	CreatedAt     *int64  `json:"createdAt,omitempty"`
	ModifiedAt    int64   `json:"modifiedAt"`
	EntryCount    int     `json:"entryCount"`
	ContainerName string  `json:"containerName,omitempty"`
	SessionID     string  `json:"sessionId,omitempty"`
}

// Catalog scans the backend record trees. The zero value (via New) resolves
// both trees relative to the user's home directory.
type Catalog struct {
	claudeDir string
	codexDir  string
	workers   uint
}

// Option configures a Catalog created with New.
type Option func(*Catalog)

// WithClaudeDir overrides the Claude home directory (default ~/.claude).
func WithClaudeDir(dir string) Option {
	return func(c *Catalog) {
		c.claudeDir = dir
	}
}

// WithCodexDir overrides the Codex home directory (default ~/.codex).
func WithCodexDir(dir string) Option {
	return func(c *Catalog) {
		c.codexDir = dir
	}
}

// WithScanWorkers sets the number of concurrent per-directory scans.
func WithScanWorkers(n uint) Option {
	return func(c *Catalog) {
		c.workers = n
	}
}

func New(opts ...Option) *Catalog {
	c := &Catalog{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Root resolves the record tree root for a backend. An override base
// directory replaces the home-relative default; the backend's fixed
// subdirectory name is appended either way.
func (c *Catalog) Root(backend Backend) (string, error) {
	var override, dotDir, subdir string
	switch backend {
	case BackendClaude:
		override, dotDir, subdir = c.claudeDir, claudeDirName, claudeSubdir
	case BackendCodex:
		override, dotDir, subdir = c.codexDir, codexDirName, codexSubdir
	default:
		return "", fmt.Errorf("unknown backend %q", backend)
	}

	if override != "" {
		abs, err := filepath.Abs(filepath.Join(override, subdir))
		if err != nil {
			return "", fmt.Errorf("resolving %s directory: %w", backend, err)
		}
		return abs, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, dotDir, subdir), nil
}

// List scans one backend's tree and returns its conversation logs sorted by
// modification time, newest first. A missing root is an empty catalog, not
// an error.
func (c *Catalog) List(backend Backend) ([]ConversationMeta, error) {
	root, err := c.Root(backend)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s root %s: %w", backend, root, err)
	}

	var metas []ConversationMeta
	switch backend {
	case BackendClaude:
		metas, err = c.scanClaude(root)
	case BackendCodex:
		metas, err = c.scanCodex(root)
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(metas, func(i, j int) bool {
		return metas[i].ModifiedAt > metas[j].ModifiedAt
	})

	return metas, nil
}

// Content returns the raw text of a conversation log.
func (c *Catalog) Content(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound{Path: path}
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
