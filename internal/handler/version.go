package handler

import (
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/osse101/PetCalendar_Go/internal/event"
	"github.com/osse101/PetCalendar_Go/internal/logger"
)

// Version is set with -ldflags "-X .../internal/handler.Version=..." on release builds.
var Version = logger.DefaultVersion

// VersionInfo identifies the running build for deployment checks and for
// clients that need to know which event schema the stream speaks.
type VersionInfo struct {
	Service       string `json:"service"`
	Version       string `json:"version"`
	GoVersion     string `json:"go_version"`
	Commit        string `json:"commit,omitempty"`
	CommitTime    string `json:"commit_time,omitempty"`
	Dirty         bool   `json:"dirty,omitempty"`
	EventSchema   string `json:"event_schema"`
	ServiceEvents int    `json:"event_types"`
}

var (
	vcsOnce sync.Once
	vcsInfo VersionInfo
)

// readVCS pulls the commit stamped by the go toolchain, when present.
func readVCS() VersionInfo {
	vcsOnce.Do(func() {
		bi, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				vcsInfo.Commit = s.Value
			case "vcs.time":
				vcsInfo.CommitTime = s.Value
			case "vcs.modified":
				vcsInfo.Dirty = s.Value == "true"
			}
		}
	})
	return vcsInfo
}

// resolveVersion prefers the linker value, then $VERSION.
func resolveVersion() string {
	if Version != "" && Version != logger.DefaultVersion {
		return Version
	}
	if env := os.Getenv("VERSION"); env != "" {
		return env
	}
	return logger.DefaultVersion
}

// HandleVersion reports which build is deployed.
func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info := readVCS()
		info.Service = logger.DefaultServiceName
		info.Version = resolveVersion()
		info.GoVersion = runtime.Version()
		info.EventSchema = event.EventSchemaVersion
		info.ServiceEvents = len(event.AllTypes)
		respondJSON(w, http.StatusOK, info)
	}
}
