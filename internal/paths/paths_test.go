package paths

import (
	"path/filepath"
	"testing"
)

func TestOverrides(t *testing.T) {
	dir := t.TempDir()
	ConfigHomeOverride = dir
	StateHomeOverride = filepath.Join(dir, "state")
	defer func() {
		ConfigHomeOverride = ""
		StateHomeOverride = ""
	}()

	if got, want := GetConfigFilePath(), filepath.Join(dir, "huekit", "huekit.toml"); got != want {
		t.Errorf("GetConfigFilePath() = %s, want %s", got, want)
	}
	if got, want := GetLogFilePath(), filepath.Join(dir, "state", "huekit.log"); got != want {
		t.Errorf("GetLogFilePath() = %s, want %s", got, want)
	}
}
