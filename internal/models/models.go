// internal/models/models.go
package models

import "time"

// ErrorResponse represents a standard error message format
type ErrorResponse struct {
	Error string `json:"error" example:"Unknown log file id 'nope'"`
}

// GenericSuccessResponse for simple success messages
type GenericSuccessResponse struct {
	Message string `json:"message"`
}

// HealthResponse holds basic liveness information for the API server.
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`
	Uptime    string    `json:"uptime" example:"1d 2h 3m 4s"`
	StartTime time.Time `json:"startTime"`
	Version   string    `json:"version" example:"1.2.0"`
}

// ServerInfo summarizes the running server inside a metrics response.
type ServerInfo struct {
	Version   string    `json:"version" example:"1.2.0"`
	Uptime    string    `json:"uptime" example:"1d 2h 3m 4s"`
	StartTime time.Time `json:"startTime"`
}

// CPUMetrics holds CPU usage statistics.
type CPUMetrics struct {
	NumCPU         int     `json:"numCpu" example:"8"`
	UsagePercent   float64 `json:"usagePercent" example:"12.5"`
	LoadAvg1       float64 `json:"loadAvg1" example:"0.42"`
	LoadAvg5       float64 `json:"loadAvg5" example:"0.36"`
	LoadAvg15      float64 `json:"loadAvg15" example:"0.31"`
	ProcessPercent float64 `json:"processPercent" example:"0.8"`
}

// MemMetrics holds memory usage statistics.
type MemMetrics struct {
	TotalMem      uint64  `json:"totalMem"`
	UsedMem       uint64  `json:"usedMem"`
	AvailableMem  uint64  `json:"availableMem"`
	UsagePercent  float64 `json:"usagePercent" example:"34.2"`
	ProcessMemMB  float64 `json:"processMemMb" example:"18.4"`
	ProcessMemPct float64 `json:"processMemPct" example:"0.1"`
}

// DiskMetrics holds disk usage statistics for a path.
type DiskMetrics struct {
	Path         string  `json:"path" example:"/"`
	TotalDisk    uint64  `json:"totalDisk"`
	UsedDisk     uint64  `json:"usedDisk"`
	FreeDisk     uint64  `json:"freeDisk"`
	UsagePercent float64 `json:"usagePercent" example:"61.0"`
}

// Metrics groups the system metric families.
type Metrics struct {
	CPU  *CPUMetrics  `json:"cpu"`
	Mem  *MemMetrics  `json:"mem"`
	Disk *DiskMetrics `json:"disk"`
}

// MetricsResponse is the payload of the system metrics endpoint.
type MetricsResponse struct {
	ServerInfo ServerInfo `json:"serverInfo"`
	Metrics    *Metrics   `json:"metrics"`
}

// VersionResponse holds the server's version information.
type VersionResponse struct {
	Version string `json:"version" example:"1.2.0"`
	Commit  string `json:"commit" example:"a1b2c3d"`
	Date    string `json:"date" example:"2026-08-01T12:00:00Z"`
}

// VersionCheckResponse holds the result of comparing the server version
// against a client-supplied minimum.
type VersionCheckResponse struct {
	Compatible  bool   `json:"compatible" example:"true"`
	CheckResult string `json:"checkResult" example:"server version v1.2.0 satisfies minimum v1.0.0"`
}
