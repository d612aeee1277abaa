package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDirPerm  = 0o755
	logFilePerm = 0o600
)

// RotatingFile is an append-only log file. Once a write would push it past
// maxSize it is renamed to a timestamped backup and a fresh file is opened.
// At most maxBackups backups are kept.
type RotatingFile struct {
	mu         sync.Mutex
	path       string
	maxSize    int64
	maxBackups int
	file       *os.File
	size       int64
	now        func() time.Time
}

// OpenRotatingFile opens dir/name for appending, creating dir if needed.
func OpenRotatingFile(dir, name string, maxSizeMB, maxBackups int) (*RotatingFile, error) {
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	r := &RotatingFile{
		path:       filepath.Join(dir, name),
		maxSize:    int64(maxSizeMB) * 1024 * 1024,
		maxBackups: maxBackups,
		now:        time.Now,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the live file path.
func (r *RotatingFile) Path() string {
	return r.path
}

func (r *RotatingFile) open() error {
	if info, err := os.Stat(r.path); err == nil {
		r.size = info.Size()
	} else {
		r.size = 0
	}
	file, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	r.file = file
	return nil
}

func (r *RotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// Close closes the live file.
func (r *RotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

func (r *RotatingFile) rotate() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	r.file = nil

	backup := fmt.Sprintf("%s.%s", r.path, r.now().Format("20060102-150405.000000"))
	if err := os.Rename(r.path, backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	r.prune()
	return r.open()
}

// prune removes the oldest backups beyond maxBackups. Failures are ignored;
// the next rotation retries.
func (r *RotatingFile) prune() {
	if r.maxBackups <= 0 {
		return
	}
	backups, err := filepath.Glob(r.path + ".*")
	if err != nil || len(backups) <= r.maxBackups {
		return
	}
	sort.Strings(backups)
	for _, old := range backups[:len(backups)-r.maxBackups] {
		_ = os.Remove(old)
	}
}

// NewWithFile returns a logger writing to a rotating file in dir, and a
// cleanup that closes it. Console output is written without colors.
func NewWithFile(cfg Config, dir, name string) (zerolog.Logger, func(), error) {
	file, err := OpenRotatingFile(dir, name, 10, 3)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}
	cfg.Output = file
	cfg.NoColor = true
	return New(cfg), func() { _ = file.Close() }, nil
}
