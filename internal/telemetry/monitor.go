package telemetry

import (
	"context"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/sirupsen/logrus"
)

// ResourceMonitor periodically logs host and process resource usage so
// long-running deployments can be checked from the log stream alone.
type ResourceMonitor struct {
	logger   *logrus.Logger
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewResourceMonitor builds a monitor. A non-positive interval disables it.
func NewResourceMonitor(logger *logrus.Logger, interval time.Duration) *ResourceMonitor {
	return &ResourceMonitor{
		logger:   logger,
		interval: interval,
	}
}

// Start launches the collection loop. Safe to call with a disabled monitor.
func (m *ResourceMonitor) Start(ctx context.Context) {
	if m.interval <= 0 {
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})
	go m.run(ctx)
}

// Stop halts the loop and waits for the in-flight collection to finish.
func (m *ResourceMonitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
}

func (m *ResourceMonitor) run(ctx context.Context) {
	defer close(m.done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.collect(ctx)
		}
	}
}

func (m *ResourceMonitor) collect(ctx context.Context) {
	fields := logrus.Fields{
		"goroutines": runtime.NumGoroutine(),
	}

	// Get CPU usage
	if cpuPercent, err := cpu.PercentWithContext(ctx, time.Second, false); err == nil && len(cpuPercent) > 0 {
		fields["cpu_pct"] = cpuPercent[0]
	}

	// Get memory usage
	if memInfo, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		fields["mem_used_pct"] = memInfo.UsedPercent
	}

	m.logger.WithFields(fields).Debug("resource usage")
}
