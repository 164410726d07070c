// internal/api/health_handlers.go
package api

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/plexnotify/logtail-api-server/internal/models"
)

var serverStartTime time.Time

// InitHealth records the server start time for uptime reporting.
func InitHealth() {
	serverStartTime = time.Now()
}

// @Summary Get API server health
// @Description Returns basic health status for the API server.
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse "Basic health information"
// @Router /health [get]
func HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Uptime:    formatUptime(time.Since(serverStartTime)),
		StartTime: serverStartTime,
		Version:   serverVersion,
	})
}

// @Summary Get system metrics
// @Description Returns CPU, memory, and disk metrics for the host running the API server.
// @Tags Health
// @Produce json
// @Success 200 {object} models.MetricsResponse "System metrics"
// @Failure 500 {object} models.ErrorResponse "Internal server error gathering metrics"
// @Router /api/v1/health/metrics [get]
func SystemMetricsHandler(c *gin.Context) {
	metrics, err := gatherSystemMetrics()
	if err != nil {
		log.Error("error gathering system metrics", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: fmt.Sprintf("error gathering system metrics: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, models.MetricsResponse{
		ServerInfo: models.ServerInfo{
			Version:   serverVersion,
			Uptime:    formatUptime(time.Since(serverStartTime)),
			StartTime: serverStartTime,
		},
		Metrics: metrics,
	})
}

// formatUptime formats a duration into a human-readable string
func formatUptime(d time.Duration) string {
	days := int(d.Hours() / 24)
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

func gatherSystemMetrics() (*models.Metrics, error) {
	cpuMetrics, err := getCPUMetrics()
	if err != nil {
		return nil, fmt.Errorf("cpu metrics error: %w", err)
	}
	memMetrics, err := getMemoryMetrics()
	if err != nil {
		return nil, fmt.Errorf("memory metrics error: %w", err)
	}
	diskMetrics, err := getDiskMetrics("/")
	if err != nil {
		return nil, fmt.Errorf("disk metrics error: %w", err)
	}
	return &models.Metrics{CPU: cpuMetrics, Mem: memMetrics, Disk: diskMetrics}, nil
}

func getCPUMetrics() (*models.CPUMetrics, error) {
	percent, err := cpu.Percent(time.Second, false)
	if err != nil {
		return nil, err
	}

	cpuMetrics := &models.CPUMetrics{NumCPU: runtime.NumCPU()}
	if len(percent) > 0 {
		cpuMetrics.UsagePercent = percent[0]
	}

	if loadAvg, err := load.Avg(); err == nil && loadAvg != nil {
		cpuMetrics.LoadAvg1 = loadAvg.Load1
		cpuMetrics.LoadAvg5 = loadAvg.Load5
		cpuMetrics.LoadAvg15 = loadAvg.Load15
	}

	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if procPercent, err := proc.CPUPercent(); err == nil {
			cpuMetrics.ProcessPercent = procPercent
		}
	}

	return cpuMetrics, nil
}

func getMemoryMetrics() (*models.MemMetrics, error) {
	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return nil, err
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	processMemPct := 0.0
	if memInfo.Total > 0 {
		processMemPct = (float64(memStats.Alloc) / float64(memInfo.Total)) * 100
	}

	return &models.MemMetrics{
		TotalMem:      memInfo.Total,
		UsedMem:       memInfo.Used,
		AvailableMem:  memInfo.Available,
		UsagePercent:  memInfo.UsedPercent,
		ProcessMemMB:  float64(memStats.Alloc) / 1024 / 1024,
		ProcessMemPct: processMemPct,
	}, nil
}

func getDiskMetrics(path string) (*models.DiskMetrics, error) {
	diskInfo, err := disk.Usage(path)
	if err != nil {
		return nil, err
	}

	return &models.DiskMetrics{
		Path:         path,
		TotalDisk:    diskInfo.Total,
		UsedDisk:     diskInfo.Used,
		FreeDisk:     diskInfo.Free,
		UsagePercent: diskInfo.UsedPercent,
	}, nil
}
