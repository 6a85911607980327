// Package version 실행 파일의 빌드 정보를 제공합니다.
//
// 링커 플래그로 주입된 값을 우선 사용하고, 비어 있는 항목은 모듈 메타데이터(VCS 정보)로 채웁니다.
//
//	go build -ldflags "-X github.com/darkkaiser/cd-exercise-api/internal/pkg/version.version=1.2.0"
package version

import (
	"cmp"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

// DefaultVersion 어떤 경로로도 버전을 알 수 없을 때 사용합니다.
const DefaultVersion = "1.0.0"

// 링커 플래그(-X)로 주입됩니다.
var (
	version   string
	commit    string
	buildDate string
)

var readBuildInfo = debug.ReadBuildInfo

var current = sync.OnceValue(func() Info {
	return collect(version, commit, buildDate)
})

// Info 빌드 정보
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	Modified  bool // 커밋되지 않은 변경사항이 포함된 빌드
	GoVersion string
	Platform  string // GOOS/GOARCH
}

// Get 프로세스의 빌드 정보를 반환합니다. 최초 호출 시 한 번만 수집합니다.
func Get() Info {
	return current()
}

// Version 애플리케이션 버전 문자열을 반환합니다.
func Version() string {
	return Get().Version
}

func collect(ver, rev, date string) Info {
	info := Info{
		Version:   strings.TrimSpace(ver),
		Commit:    strings.TrimSpace(rev),
		BuildDate: strings.TrimSpace(date),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi, ok := readBuildInfo(); ok && bi != nil {
		if info.Version == "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}

		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Commit = cmp.Or(info.Commit, s.Value)
			case "vcs.time":
				info.BuildDate = cmp.Or(info.BuildDate, s.Value)
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}

	info.Version = cmp.Or(info.Version, DefaultVersion)

	return info
}

// String 로그에 남기기 위한 한 줄 요약을 반환합니다.
//
//	1.0.0+dirty (commit f25b8bf, built 2025-12-01T14:00:00Z, go1.24.0 linux/amd64)
func (i Info) String() string {
	v := cmp.Or(i.Version, "unknown")
	if i.Modified {
		v += "+dirty"
	}

	var details []string
	if i.Commit != "" {
		details = append(details, "commit "+i.Commit[:min(len(i.Commit), 7)])
	}
	if i.BuildDate != "" {
		details = append(details, "built "+i.BuildDate)
	}
	if rt := strings.TrimSpace(i.GoVersion + " " + i.Platform); rt != "" {
		details = append(details, rt)
	}

	if len(details) == 0 {
		return v
	}
	return v + " (" + strings.Join(details, ", ") + ")"
}
