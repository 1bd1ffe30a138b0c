package storage

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jmcpheron/ccc-schedule-collector/internal/schedule"
)

// CompressionGzip enables gzip-compressed snapshot files.
const CompressionGzip = "gzip"

// metadataCap bounds the collection metadata log.
const metadataCap = 100

// Storage handles persistence of schedule snapshots.
type Storage struct {
	dataDir     string
	compression string
}

// RunMetadata records the outcome of one collection run.
type RunMetadata struct {
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationSeconds float64   `json:"duration_seconds"`
	TermCode        string    `json:"term_code"`
	Sections        int       `json:"sections_collected"`
	Diagnostics     int       `json:"diagnostics"`
	Success         bool      `json:"success"`
	Error           string    `json:"error,omitempty"`
}

// New creates a Storage rooted at dataDir, creating the directory if
// needed. compression is "" / "none" for plain JSON or "gzip".
func New(dataDir, compression string) (*Storage, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	if compression == "none" {
		compression = ""
	}
	return &Storage{dataDir: dataDir, compression: compression}, nil
}

func (s *Storage) ext() string {
	if s.compression == CompressionGzip {
		return ".json.gz"
	}
	return ".json"
}

// SaveSnapshot writes a timestamped snapshot file and refreshes the
// per-term latest symlink. Returns the path written.
func (s *Storage) SaveSnapshot(snap *schedule.Snapshot) (string, error) {
	ts := snap.CollectedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	name := fmt.Sprintf("schedule_%s_%s%s", snap.TermCode, ts.Format("20060102_150405"), s.ext())
	path := filepath.Join(s.dataDir, name)

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := s.writeFile(path, data); err != nil {
		return "", err
	}

	// A failed symlink is an inconvenience, not a failed save; some
	// filesystems cannot create them at all.
	_ = s.refreshLatestLink(snap.TermCode, name)
	return path, nil
}

func (s *Storage) writeFile(path string, data []byte) error {
	if s.compression != CompressionGzip {
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
		return nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("compressing snapshot: %w", err)
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("compressing snapshot: %w", err)
	}
	return f.Close()
}

func (s *Storage) refreshLatestLink(termCode, target string) error {
	link := filepath.Join(s.dataDir, fmt.Sprintf("schedule_%s_latest%s", termCode, s.ext()))
	if _, err := os.Lstat(link); err == nil {
		if err := os.Remove(link); err != nil {
			return err
		}
	}
	return os.Symlink(target, link)
}

// LoadSnapshot reads a snapshot file, decompressing transparently based on
// the file extension.
func (s *Storage) LoadSnapshot(path string) (*schedule.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("decompressing snapshot: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	var snap schedule.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &snap, nil
}

// LatestSnapshot loads the newest snapshot for a term, or for any term
// when termCode is empty.
func (s *Storage) LatestSnapshot(termCode string) (*schedule.Snapshot, error) {
	files, err := s.ListSnapshots(termCode)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no snapshots found in %s", s.dataDir)
	}
	return s.LoadSnapshot(files[0])
}

// ListSnapshots returns snapshot file paths, most recent first, optionally
// filtered by term code. The latest symlinks are excluded.
func (s *Storage) ListSnapshots(termCode string) ([]string, error) {
	pattern := "schedule_*"
	if termCode != "" {
		pattern = "schedule_" + termCode + "_*"
	}
	matches, err := filepath.Glob(filepath.Join(s.dataDir, pattern))
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}

	var files []string
	for _, m := range matches {
		if strings.Contains(filepath.Base(m), "_latest") {
			continue
		}
		files = append(files, m)
	}
	// Timestamped names sort chronologically; reverse for most recent first.
	sort.Sort(sort.Reverse(sort.StringSlice(files)))
	return files, nil
}

// Cleanup removes old snapshot files, keeping the keepCount most recent.
func (s *Storage) Cleanup(keepCount int) error {
	if keepCount <= 0 {
		return nil
	}
	files, err := s.ListSnapshots("")
	if err != nil {
		return err
	}
	if len(files) <= keepCount {
		return nil
	}
	for _, f := range files[keepCount:] {
		if err := os.Remove(f); err != nil {
			return fmt.Errorf("removing %s: %w", f, err)
		}
	}
	return nil
}

// AppendRunMetadata appends one run record to the metadata log, keeping
// only the most recent entries.
func (s *Storage) AppendRunMetadata(meta RunMetadata) error {
	path := filepath.Join(s.dataDir, "collection_metadata.json")

	var entries []RunMetadata
	if data, err := os.ReadFile(path); err == nil {
		// A corrupt log starts over rather than blocking collection.
		_ = json.Unmarshal(data, &entries)
	}

	entries = append(entries, meta)
	if len(entries) > metadataCap {
		entries = entries[len(entries)-metadataCap:]
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}
	return nil
}
