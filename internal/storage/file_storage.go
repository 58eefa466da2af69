package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cloudfit/interviewd/internal/scheduling"
	"github.com/cloudfit/interviewd/pkg/errors"
	"github.com/cloudfit/interviewd/pkg/logger"
)

func NewFileStore(cfg Config, source Snapshotter, log logger.Logger) *FileStore {
	return &FileStore{
		path:     cfg.Path,
		interval: cfg.FlushInterval,
		source:   source,
		log:      log.With("file_store"),
	}
}

type FileStore struct {
	path     string
	interval time.Duration
	source   Snapshotter
	log      logger.Logger
}

// Load restores the registry from the snapshot file. A missing file is
// a clean first boot, not an error.
func (s *FileStore) Load() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.log.Infof("no snapshot at %s, starting empty", s.path)
		return nil
	}
	if err != nil {
		return errors.WrapFail(err, "read snapshot file")
	}

	var state scheduling.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return errors.WrapFail(err, "decode snapshot")
	}

	if err := s.source.ImportState(state); err != nil {
		return errors.WrapFail(err, "restore registry state")
	}

	s.log.Infof("restored %d users and %d interviews from %s",
		len(state.Users), len(state.Interviews), s.path)
	return nil
}

// Run flushes the registry on a timer until ctx is cancelled, then
// writes a final snapshot.
func (s *FileStore) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.flush()
		case <-ctx.Done():
			s.flush()
			return
		}
	}
}

func (s *FileStore) flush() {
	if err := s.Flush(); err != nil {
		s.log.Warn(err)
	}
}

// Flush writes the current state to a temp file and renames it over
// the snapshot.
func (s *FileStore) Flush() error {
	raw, err := json.Marshal(s.source.ExportState())
	if err != nil {
		return errors.WrapFail(err, "encode snapshot")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return errors.WrapFail(err, "create snapshot temp file")
	}

	_, err = tmp.Write(raw)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return errors.WrapFail(err, "write snapshot temp file")
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return errors.WrapFail(err, "replace snapshot file")
	}

	s.log.Debugf("flushed snapshot to %s", s.path)
	return nil
}
