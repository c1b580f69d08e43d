package system

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// DefaultPolicyPath returns the first existing policy file from the
// conventional locations, checked in priority order. The boolean is false
// when no candidate exists; running without a policy is normal.
func DefaultPolicyPath() (string, bool) {
	for _, candidate := range candidatePolicyPaths() {
		if candidate == "" {
			continue
		}
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

func candidatePolicyPaths() []string {
	var candidates []string

	home, _ := os.UserHomeDir()

	if env := os.Getenv("DATESHIFT_POLICY"); env != "" {
		candidates = append(candidates, expandHomePath(env, home))
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			candidates = append(candidates, filepath.Join(appData, "date-shift", "policy.yaml"))
		}
	} else {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			candidates = append(candidates, filepath.Join(expandHomePath(xdg, home), "date-shift", "policy.yaml"))
		}
		if home != "" {
			candidates = append(candidates, filepath.Join(home, ".config", "date-shift", "policy.yaml"))
		}
	}

	candidates = append(candidates, "date-shift.yaml")
	return candidates
}

func expandHomePath(path, home string) string {
	trimmed := strings.TrimSpace(path)
	trimmed = strings.Trim(trimmed, "\"")
	if home == "" {
		return trimmed
	}
	if strings.HasPrefix(trimmed, "${HOME}") {
		return filepath.Join(home, strings.TrimPrefix(trimmed, "${HOME}"))
	}
	if strings.HasPrefix(trimmed, "$HOME") {
		return filepath.Join(home, strings.TrimPrefix(trimmed, "$HOME"))
	}
	if strings.HasPrefix(trimmed, "~/") {
		return filepath.Join(home, strings.TrimPrefix(trimmed, "~/"))
	}
	return trimmed
}
