package server

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// Pruner removes stale artifacts from the export staging folder. The
// packager drops intermediate files there that the catalog never
// lists; anything older than MaxAge gets deleted.
type Pruner struct {
	Dir      string
	Interval time.Duration
	MaxAge   time.Duration
}

// Start runs the pruner in the background until ctx is cancelled.
func (p *Pruner) Start(ctx context.Context) {
	ticker := time.NewTicker(p.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.sweep()
			}
		}
	}()
	logrus.WithFields(logrus.Fields{
		"dir":      p.Dir,
		"interval": p.Interval,
		"max_age":  p.MaxAge,
	}).Info("export pruner started")
}

func (p *Pruner) sweep() int {
	now := time.Now()
	removed := 0

	filepath.Walk(p.Dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if now.Sub(info.ModTime()) > p.MaxAge {
			if err := os.Remove(path); err == nil {
				removed++
			}
		}
		return nil
	})

	// Second pass collects directories emptied above. Remove fails on
	// non-empty ones, which is fine.
	filepath.Walk(p.Dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || !info.IsDir() || path == p.Dir {
			return nil
		}
		os.Remove(path)
		return nil
	})

	if removed > 0 {
		logrus.WithField("removed", removed).Info("pruned stale export files")
	}
	return removed
}
