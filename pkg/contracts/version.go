package contracts

import (
	"log/slog"
	"runtime"
)

const (
	// Version is the current version of the processor
	Version = "0.1.0"

	// TableSchemaVersion changes whenever a feature table column is added,
	// removed or reordered
	TableSchemaVersion = "v1"
)

var (
	// BuildTime is set during build using ldflags
	BuildTime = "unknown"

	// GitCommit is set during build using ldflags
	GitCommit = "unknown"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	Version      string `json:"version"`
	TableSchema  string `json:"table_schema"`
	BuildTime    string `json:"build_time"`
	GitCommit    string `json:"git_commit"`
	GoVersion    string `json:"go_version"`
	OS           string `json:"os"`
	Architecture string `json:"architecture"`
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:      Version,
		TableSchema:  TableSchemaVersion,
		BuildTime:    BuildTime,
		GitCommit:    GitCommit,
		GoVersion:    runtime.Version(),
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,
	}
}

// LogValue groups the version fields under one log attribute
func (v VersionInfo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("version", v.Version),
		slog.String("table_schema", v.TableSchema),
		slog.String("git_commit", v.GitCommit),
		slog.String("go_version", v.GoVersion),
	)
}
