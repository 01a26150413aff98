package logic

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"time"
	"tunefed/shared"
)

const profilerStartDelaySec = 10
const profilerLoopSec = 60

// IProfiler periodically dumps goroutine stacks, which is how stuck delivery workers or crawls show up.
type IProfiler interface {
	Start()
	Stop()
}

type profiler struct {
	logger          shared.ILogger
	profileDir      string
	profileKeepDays int
	cancel          context.CancelFunc
}

func NewProfiler(cfg *shared.Config, logger shared.ILogger) IProfiler {
	return &profiler{
		logger:          logger,
		profileDir:      cfg.ProfileDir,
		profileKeepDays: cfg.ProfileKeepDays,
	}
}

// Start does nothing unless a profile directory is configured.
func (prof *profiler) Start() {
	if prof.profileDir == "" || prof.cancel != nil {
		return
	}
	if err := os.MkdirAll(prof.profileDir, 0755); err != nil {
		prof.logger.Errorf("Cannot create profile directory '%s': %v", prof.profileDir, err)
		return
	}
	var ctx context.Context
	ctx, prof.cancel = context.WithCancel(context.Background())
	go prof.profilerLoop(ctx)
}

func (prof *profiler) Stop() {
	if prof.cancel != nil {
		prof.cancel()
		prof.cancel = nil
	}
}

func saveProfile(profileDir string, now time.Time) error {
	fname := fmt.Sprintf("%v.txt", now.Format("2006-01-02!15-04-05"))
	f, err := os.Create(filepath.Join(profileDir, fname))
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err = fmt.Fprintf(f, "Goroutine count: %d\n\n", runtime.NumGoroutine()); err != nil {
		return err
	}
	return pprof.Lookup("goroutine").WriteTo(f, 2)
}

func purgeOldProfiles(profileDir string, cutoff time.Time) error {
	return filepath.Walk(profileDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && info.ModTime().Before(cutoff) {
			return os.Remove(path)
		}
		return nil
	})
}

func (prof *profiler) profilerLoop(ctx context.Context) {
	wait := profilerStartDelaySec * time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
		wait = profilerLoopSec * time.Second
		now := time.Now()
		if err := saveProfile(prof.profileDir, now); err != nil {
			prof.logger.Warnf("Failed to save goroutine profile: %v", err)
			continue
		}
		if err := purgeOldProfiles(prof.profileDir, now.AddDate(0, 0, -prof.profileKeepDays)); err != nil {
			prof.logger.Warnf("Failed to purge old profiles: %v", err)
		}
	}
}
