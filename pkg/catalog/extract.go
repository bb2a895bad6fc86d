package catalog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const maxLineSize = 10 * 1024 * 1024 // 10MB max line

// claudeEnvelope is the first-line shape of a Claude Code transcript entry.
type claudeEnvelope struct {
	SessionID string `json:"sessionId"`
}

// codexEnvelope is the first-line shape of a Codex rollout file. The session
// id only lives in the payload of the session_meta record.
type codexEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type codexSessionMeta struct {
	ID string `json:"id"`
}

// extractMeta derives ConversationMeta for a single log file: filesystem
// metadata, the line-delimited entry count, and a best-effort session id
// from the first line. Only unreadable files or metadata fail extraction.
func extractMeta(path string, backend Backend, container string) (ConversationMeta, error) {
	info, err := os.Stat(path)
	if err != nil {
		return ConversationMeta{}, fmt.Errorf("reading metadata for %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return ConversationMeta{}, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	var entryCount int
	var firstLine []byte

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if entryCount == 0 {
			firstLine = append([]byte(nil), scanner.Bytes()...)
		}
		entryCount++
	}
	if err := scanner.Err(); err != nil {
		return ConversationMeta{}, fmt.Errorf("reading %s: %w", path, err)
	}

	meta := ConversationMeta{
		ID:            strings.TrimSuffix(filepath.Base(path), logExt),
		Backend:       backend,
		FilePath:      path,
		FileSize:      info.Size(),
		EntryCount:    entryCount,
		ContainerName: container,
		SessionID:     sessionIDFromLine(backend, firstLine),
	}

	if mod := info.ModTime(); !mod.IsZero() {
		meta.ModifiedAt = mod.Unix()
	}
	if created, ok := birthtime(info); ok {
		meta.CreatedAt = &created
	}

	return meta, nil
}

// sessionIDFromLine parses the first line as the backend's envelope and pulls
// the session identifier out of it. Anything malformed yields an empty id,
// never an error.
func sessionIDFromLine(backend Backend, line []byte) string {
	if len(line) == 0 {
		return ""
	}

	switch backend {
	case BackendClaude:
		var env claudeEnvelope
		if err := json.Unmarshal(line, &env); err != nil {
			return ""
		}
		return env.SessionID

	case BackendCodex:
		var env codexEnvelope
		if err := json.Unmarshal(line, &env); err != nil || env.Type != "session_meta" {
			return ""
		}
		var meta codexSessionMeta
		if err := json.Unmarshal(env.Payload, &meta); err != nil {
			return ""
		}
		return meta.ID
	}

	return ""
}
