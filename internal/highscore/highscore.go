// Package highscore persists the single best score to a flat text file.
// The file holds one line: "<score>,<timestamp>".
package highscore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultFileName is the base name of the record file.
const DefaultFileName = "high-score.txt"

// TimeLayout is the timestamp format written next to the score.
const TimeLayout = "2006-01-02 15:04:05 -0700"

// ErrMalformed is returned when the file exists but cannot be parsed.
var ErrMalformed = errors.New("highscore: malformed record")

// Record is the best score and when it was achieved.
type Record struct {
	Score      int
	AchievedAt string
}

// NewRecord creates a record stamped with t.
func NewRecord(score int, t time.Time) Record {
	return Record{Score: score, AchievedAt: t.Format(TimeLayout)}
}

// String formats the record as it is stored on disk, without the newline.
func (r Record) String() string {
	return fmt.Sprintf("%d,%s", r.Score, r.AchievedAt)
}

// Parse decodes a stored line. Whitespace around both fields is ignored.
func Parse(line string) (Record, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Record{}, nil
	}

	scoreField, at, _ := strings.Cut(line, ",")
	score, err := strconv.Atoi(strings.TrimSpace(scoreField))
	if err != nil || score < 0 {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformed, line)
	}

	return Record{Score: score, AchievedAt: strings.TrimSpace(at)}, nil
}

// FileStore reads and writes the record file.
// It is safe for concurrent use, which the SSH host relies on.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store for the given path. A leading ~ expands to
// the home directory. The file is not touched until Load or Save.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		path = DefaultFileName
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("highscore: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return &FileStore{path: path}, nil
}

// Path returns the resolved file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stored record. A missing or empty file yields a zero
// record and no error. A malformed file yields a zero record and an error
// wrapping ErrMalformed.
func (s *FileStore) Load() (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Record{}, nil
	}
	if err != nil {
		return Record{}, fmt.Errorf("highscore: cannot read %s: %w", s.path, err)
	}

	// Only the first line counts
	line, _, _ := strings.Cut(string(data), "\n")
	return Parse(line)
}

// Save overwrites the file with r. The write goes through a temporary file
// so a crash never leaves a half-written record behind.
func (s *FileStore) Save(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".high-score-*")
	if err != nil {
		return fmt.Errorf("highscore: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(r.String() + "\n"); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("highscore: cannot write record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("highscore: cannot write record: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("highscore: cannot replace %s: %w", s.path, err)
	}
	return nil
}

// Clear removes the record file. Removing a missing file is not an error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("highscore: cannot remove %s: %w", s.path, err)
	}
	return nil
}
