// Package profiler measures update rate and memory use and can serve a live
// runtime dashboard while attached.
package profiler

import (
	"errors"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/sirupsen/logrus"
)

// Stats is one reporting interval's summary.
type Stats struct {
	FPS         float64
	HeapMB      float64
	AllocRateMB float64 // MB allocated per second during the interval
	GCCount     uint32
	LastPauseUs uint64
	MaxPauseUs  uint64 // longest GC pause since the previous report
	SysMB       float64
}

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Tick is called once per frame and logs a summary at a configurable interval.
// Attach starts a statsview dashboard when a stats address is configured.
type Profiler struct {
	mu *sync.Mutex

	logger         logrus.FieldLogger
	now            func() time.Time
	updateInterval time.Duration
	statsAddr      string

	frameCount     int
	lastTime       time.Time
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Stats

	dashboard *statsview.ViewManager
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		mu:             &sync.Mutex{},
		logger:         logrus.StandardLogger(),
		now:            time.Now,
		updateInterval: time.Second,
	}
	for _, option := range options {
		option(p)
	}
	p.logger = p.logger.WithField("component", "profiler")
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.mu.Lock()
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval || elapsed <= 0 {
		p.mu.Unlock()
		return false
	}

	stats := p.collect(elapsed)
	p.last = stats
	p.frameCount = 0
	p.lastTime = currentTime
	p.mu.Unlock()

	p.logger.WithFields(logrus.Fields{
		"fps":     stats.FPS,
		"heap_mb": stats.HeapMB,
		"gc":      stats.GCCount,
	}).Infof("[Profiler] FPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		stats.FPS, stats.HeapMB, stats.AllocRateMB, stats.GCCount, stats.LastPauseUs, stats.MaxPauseUs, stats.SysMB)
	return true
}

// Last returns the most recently reported stats.
//
// Returns:
//   - Stats: the last report, zero before the first one
func (p *Profiler) Last() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

// Attach serves the statsview dashboard on the configured address.
// Without an address Attach does nothing and stats only go to the log.
//
// Returns:
//   - error: always nil; listen failures are logged from the serving goroutine
func (p *Profiler) Attach() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.statsAddr == "" || p.dashboard != nil {
		return nil
	}

	// viewer configuration is global and must be set before statsview.New.
	viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(p.statsAddr))
	mgr := statsview.New()
	p.dashboard = mgr

	logger := p.logger.WithField("addr", p.statsAddr)
	go func() {
		if err := mgr.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("stats dashboard stopped")
		}
	}()
	logger.Info("stats dashboard attached")
	return nil
}

// Detach stops the dashboard started by Attach.
//
// Returns:
//   - error: always nil
func (p *Profiler) Detach() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.dashboard == nil {
		return nil
	}
	p.dashboard.Stop()
	p.dashboard = nil
	p.logger.Info("stats dashboard detached")
	return nil
}

// Attached reports whether the dashboard is running.
//
// Returns:
//   - bool: true between a successful Attach and Detach
func (p *Profiler) Attached() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dashboard != nil
}

// collect reads runtime memory statistics for an interval of the given length.
// Caller must hold the mutex.
func (p *Profiler) collect(elapsed time.Duration) Stats {
	runtime.ReadMemStats(&p.memStats)
	seconds := elapsed.Seconds()

	stats := Stats{
		FPS:     float64(p.frameCount) / seconds,
		HeapMB:  float64(p.memStats.Alloc) / 1024 / 1024,
		SysMB:   float64(p.memStats.Sys) / 1024 / 1024,
		GCCount: p.memStats.NumGC,
	}
	stats.AllocRateMB = float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / seconds

	// PauseNs is a circular buffer of the last 256 GC pauses.
	if gc := stats.GCCount; gc > 0 {
		stats.LastPauseUs = p.memStats.PauseNs[(gc-1)%256] / 1000
		start := p.lastGCCount
		if gc-start > 256 {
			start = gc - 256
		}
		for i := start; i < gc; i++ {
			stats.MaxPauseUs = max(stats.MaxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	p.lastGCCount = stats.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return stats
}
