package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/htmlchop"
)

// ManifestEntry records one emitted file.
type ManifestEntry struct {
	Path     string `json:"path"`     // forward-slash path relative to the output root
	Size     int    `json:"size"`     // content length in bytes
	Checksum string `json:"checksum"` // hex xxhash64 of the content
}

// Checksum returns the hex xxhash64 digest of content as stored in
// manifest entries.
func Checksum(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// Ensure RecordingWriter implements htmlchop.FragmentWriter.
var _ htmlchop.FragmentWriter = (*RecordingWriter)(nil)

// RecordingWriter wraps a FragmentWriter and records every successful
// write as a manifest entry. Safe for concurrent use.
type RecordingWriter struct {
	next htmlchop.FragmentWriter

	mu      sync.Mutex
	entries []ManifestEntry
}

// NewRecordingWriter creates a new RecordingWriter.
func NewRecordingWriter(next htmlchop.FragmentWriter) *RecordingWriter {
	return &RecordingWriter{next: next}
}

// WriteFragment delegates to the wrapped writer and records the entry on
// success.
func (w *RecordingWriter) WriteFragment(ctx context.Context, f *htmlchop.Fragment) error {
	if err := w.next.WriteFragment(ctx, f); err != nil {
		return err
	}
	w.mu.Lock()
	w.entries = append(w.entries, ManifestEntry{
		Path:     f.Path,
		Size:     len(f.HTML),
		Checksum: Checksum([]byte(f.HTML)),
	})
	w.mu.Unlock()
	return nil
}

// Entries returns the recorded entries sorted by path for deterministic
// manifests regardless of write order.
func (w *RecordingWriter) Entries() []ManifestEntry {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]ManifestEntry, len(w.entries))
	copy(out, w.entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// WriteManifest writes entries as manifest.json under the base directory.
func (w *Writer) WriteManifest(entries []ManifestEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(w.baseDir, "manifest.json"), data, 0644)
}
