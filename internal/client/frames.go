package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hmdissanayake/tank-watch/internal/logger"
	"github.com/hmdissanayake/tank-watch/internal/service"
)

// ErrNoFrame means the spool directory holds no usable capture yet. The
// verify job treats a failed capture as a soft miss and tries again on the
// next tick.
var ErrNoFrame = errors.New("no frame in spool")

// spoolFrameSource serves frames from a spool directory that the device
// camera integration writes JPEG/PNG captures into. Capture always returns
// the newest file so a stale frame never outlives a fresher one.
type spoolFrameSource struct {
	dir    string
	logger *logger.Logger
}

// NewSpoolFrameSource returns a [service.FrameSource] over the given spool
// directory.
func NewSpoolFrameSource(dir string, log *logger.Logger) service.FrameSource {
	return &spoolFrameSource{dir: dir, logger: log}
}

func (s *spoolFrameSource) Open(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("open frame spool: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("open frame spool: %s is not a directory", s.dir)
	}
	return nil
}

func (s *spoolFrameSource) Capture(_ context.Context) ([]byte, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read frame spool: %w", err)
	}

	var newestPath string
	var newestMod time.Time
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".jpg", ".jpeg", ".png":
		default:
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if newestPath == "" || info.ModTime().After(newestMod) {
			newestPath = filepath.Join(s.dir, entry.Name())
			newestMod = info.ModTime()
		}
	}
	if newestPath == "" {
		return nil, ErrNoFrame
	}

	data, err := os.ReadFile(newestPath)
	if err != nil {
		return nil, fmt.Errorf("read frame %s: %w", newestPath, err)
	}
	if len(data) == 0 {
		return nil, ErrNoFrame
	}
	return data, nil
}

func (s *spoolFrameSource) Close() error { return nil }
