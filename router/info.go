package router

import (
	"context"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/incidentguard/database"
	"github.com/l3montree-dev/incidentguard/shared"
)

// set with -ldflags "-X github.com/l3montree-dev/incidentguard/router.Version=..."
var (
	Version   = "dev"
	Commit    string
	BuildDate string
)

var startedAt = time.Now()

// InfoResponse is the typed response returned by the /api/v1/info/ endpoint.
type InfoResponse struct {
	Build    BuildInfo    `json:"build"`
	Process  ProcessInfo  `json:"process"`
	Runtime  RuntimeInfo  `json:"runtime"`
	Database DatabaseInfo `json:"database"`
	Broker   BrokerInfo   `json:"broker"`
}

type BuildInfo struct {
	Version   string `json:"version,omitempty"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	Module    string `json:"module,omitempty"`
}

type ProcessInfo struct {
	PID           int    `json:"pid"`
	Hostname      string `json:"hostname,omitempty"`
	UptimeSeconds int    `json:"uptime_seconds"`
}

type RuntimeInfo struct {
	GoVersion     string   `json:"go_version,omitempty"`
	NumGoroutines int      `json:"num_goroutines,omitempty"`
	Mem           MemStats `json:"mem"`
}

type MemStats struct {
	Alloc      uint64 `json:"alloc"`
	TotalAlloc uint64 `json:"total_alloc"`
	Sys        uint64 `json:"sys"`
	HeapAlloc  uint64 `json:"heap_alloc"`
}

type PoolInfo struct {
	DBName          string `json:"db_name,omitempty"`
	MaxOpenConns    int32  `json:"max_open_conns,omitempty"`
	ConnMaxLifetime string `json:"conn_max_lifetime,omitempty"`
	ConnMaxIdleTime string `json:"conn_max_idle_time,omitempty"`

	// taken from pgxpool.Stat()
	TotalConns    int `json:"total_conns"`
	IdleConns     int `json:"idle_conns"`
	AcquiredConns int `json:"acquired_conns"`
	MaxConns      int `json:"max_conns"`
}

type DatabaseInfo struct {
	Status string  `json:"status"`
	Error  *string `json:"error,omitempty"`

	MigrationVersion *uint   `json:"migration_version,omitempty"`
	MigrationDirty   *bool   `json:"migration_dirty,omitempty"`
	MigrationError   *string `json:"migration_error,omitempty"`

	Pool *PoolInfo `json:"pool,omitempty"`
}

type BrokerInfo struct {
	Healthy      bool     `json:"healthy"`
	ActiveTopics []string `json:"active_topics"`
}

// implemented by the postgres broker
type brokerInspector interface {
	IsHealthy(ctx context.Context) bool
	GetActiveTopics() []shared.PubSubChannel
}

func brokerInfo(ctx context.Context, broker shared.PubSubBroker) BrokerInfo {
	info := BrokerInfo{Healthy: true, ActiveTopics: []string{}}
	inspector, ok := broker.(brokerInspector)
	if !ok {
		return info
	}
	info.Healthy = inspector.IsHealthy(ctx)
	for _, topic := range inspector.GetActiveTopics() {
		info.ActiveTopics = append(info.ActiveTopics, string(topic))
	}
	return info
}

func buildInfo() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.Module = bi.Main.Path
		if info.Commit == "" {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" {
					info.Commit = s.Value
				}
			}
		}
	}
	return info
}

func processInfo() ProcessInfo {
	host, _ := os.Hostname()
	return ProcessInfo{
		PID:           os.Getpid(),
		Hostname:      host,
		UptimeSeconds: int(time.Since(startedAt).Seconds()),
	}
}

func runtimeInfo() RuntimeInfo {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return RuntimeInfo{
		GoVersion:     runtime.Version(),
		NumGoroutines: runtime.NumGoroutine(),
		Mem: MemStats{
			Alloc:      mem.Alloc,
			TotalAlloc: mem.TotalAlloc,
			Sys:        mem.Sys,
			HeapAlloc:  mem.HeapAlloc,
		},
	}
}

func databaseInfo(db shared.DB, pool *pgxpool.Pool) DatabaseInfo {
	poolCfg := database.GetPoolConfigFromEnv()
	poolInfo := PoolInfo{
		DBName:          poolCfg.DBName,
		MaxOpenConns:    poolCfg.MaxOpenConns,
		ConnMaxLifetime: poolCfg.ConnMaxLifetime.String(),
		ConnMaxIdleTime: poolCfg.ConnMaxIdleTime.String(),
	}

	dbInfo := DatabaseInfo{Status: "unknown", Pool: &poolInfo}
	sqlDB, err := db.DB()
	if err != nil {
		dbInfo.Status = "unhealthy"
		dbInfo.Error = shared.Ptr("failed to get database instance")
		return dbInfo
	}
	if err := sqlDB.Ping(); err != nil {
		dbInfo.Status = "unhealthy"
		dbInfo.Error = shared.Ptr("database ping failed")
		return dbInfo
	}
	dbInfo.Status = "healthy"

	if pool != nil {
		stats := pool.Stat()
		poolInfo.TotalConns = int(stats.TotalConns())
		poolInfo.IdleConns = int(stats.IdleConns())
		poolInfo.AcquiredConns = int(stats.AcquiredConns())
		poolInfo.MaxConns = int(stats.MaxConns())
	}

	if ver, dirty, err := database.GetMigrationVersionWithDB(db); err == nil {
		dbInfo.MigrationVersion = &ver
		dbInfo.MigrationDirty = &dirty
	} else {
		dbInfo.MigrationError = shared.Ptr(err.Error())
	}
	return dbInfo
}
