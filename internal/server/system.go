package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"golang.org/x/sync/errgroup"
)

func (s *Server) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// systemHealthHandler collects system-level metrics, database pool stats and
// pipeline counters. The probes are independent, so they run concurrently;
// the CPU sample alone takes a full second.
func (s *Server) systemHealthHandler(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		memStats   *mem.VirtualMemoryStat
		cpuPercent []float64
		diskStats  *disk.UsageStat
		hostInfo   *host.InfoStat
		dbStats    map[string]string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		memStats, err = mem.VirtualMemoryWithContext(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		cpuPercent, err = cpu.PercentWithContext(gctx, time.Second, false)
		return err
	})
	g.Go(func() error {
		var err error
		diskStats, err = disk.UsageWithContext(gctx, "/")
		return err
	})
	g.Go(func() error {
		var err error
		hostInfo, err = host.InfoWithContext(gctx)
		return err
	})
	g.Go(func() error {
		dbStats = s.db.Health(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status": "degraded",
			"error":  err.Error(),
		})
	}

	usage := "n/a"
	if len(cpuPercent) > 0 {
		usage = fmt.Sprintf("%.2f%%", cpuPercent[0])
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "online",
		"runtime": map[string]interface{}{
			"uptime":     time.Since(s.startTime).String(),
			"start_time": s.startTime.Format(time.RFC3339),
			"os":         hostInfo.OS,
			"platform":   hostInfo.Platform,
			"arch":       hostInfo.KernelArch,
			"hostname":   hostInfo.Hostname,
		},
		"cpu": map[string]interface{}{
			"usage_percent": usage,
			"cores":         hostInfo.Procs,
		},
		"memory": map[string]interface{}{
			"total_gb":     fmt.Sprintf("%.2f GB", float64(memStats.Total)/1024/1024/1024),
			"used_gb":      fmt.Sprintf("%.2f GB", float64(memStats.Used)/1024/1024/1024),
			"used_percent": fmt.Sprintf("%.2f%%", memStats.UsedPercent),
			"free_gb":      fmt.Sprintf("%.2f GB", float64(memStats.Free)/1024/1024/1024),
		},
		"disk": map[string]interface{}{
			"total_gb":     fmt.Sprintf("%.2f GB", float64(diskStats.Total)/1024/1024/1024),
			"used_gb":      fmt.Sprintf("%.2f GB", float64(diskStats.Used)/1024/1024/1024),
			"used_percent": fmt.Sprintf("%.2f%%", diskStats.UsedPercent),
		},
		"database": dbStats,
		"pipeline": s.stats.Snapshot(),
	})
}
