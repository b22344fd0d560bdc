package monitor

import (
	"fmt"
	"runtime"
	"time"

	"github.com/rtaylor52242/logo-animator-studio/common"
	"github.com/rtaylor52242/logo-animator-studio/common/config"
	"github.com/rtaylor52242/logo-animator-studio/common/logger"
)

// Health is the live process snapshot served by the health endpoint.
type Health struct {
	Status      string      `json:"status"`
	Goroutines  int         `json:"goroutines"`
	Sessions    int         `json:"sessions"`
	Videos      int         `json:"videos"`
	Subscribers int         `json:"subscribers"`
	Memory      MemoryStats `json:"memory"`
}

type MemoryStats struct {
	AllocMB      uint64 `json:"alloc_mb"`
	TotalAllocMB uint64 `json:"total_alloc_mb"`
	SysMB        uint64 `json:"sys_mb"`
	NumGC        uint32 `json:"num_gc"`
}

func Snapshot(sessions int, videos int, subscribers int) Health {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Health{
		Status:      "ok",
		Goroutines:  runtime.NumGoroutine(),
		Sessions:    sessions,
		Videos:      videos,
		Subscribers: subscribers,
		Memory: MemoryStats{
			AllocMB:      m.Alloc / 1024 / 1024,
			TotalAllocMB: m.TotalAlloc / 1024 / 1024,
			SysMB:        m.Sys / 1024 / 1024,
			NumGC:        m.NumGC,
		},
	}
}

// StartGoroutineMonitor logs goroutine and memory pressure every 30s.
// Runaway counts usually mean polling loops that never settled.
func StartGoroutineMonitor() {
	common.SafeGoroutine(func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			count := runtime.NumGoroutine()
			if count > 5000 {
				logger.SysError(fmt.Sprintf("high goroutine count detected: %d", count))
			} else if count > 2000 {
				logger.SysLog(fmt.Sprintf("goroutine count elevated: %d", count))
			} else if config.DebugEnabled {
				logger.SysLog(fmt.Sprintf("goroutine count: %d", count))
			}

			if config.DebugEnabled {
				var m runtime.MemStats
				runtime.ReadMemStats(&m)
				logger.SysLog(fmt.Sprintf("memory: alloc=%dMB, totalAlloc=%dMB, sys=%dMB, numGC=%d",
					m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024, m.NumGC))
			}
		}
	})
}
