package commands

import (
	"SkyVault/internal/cli/auth"
	"SkyVault/internal/config"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы токен создавался в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

// loggedIn сохраняет токен, как после успешного login.
func loggedIn(t *testing.T, token string) {
	t.Helper()
	withTempConfig(t)
	if err := auth.SaveToken(token); err != nil {
		t.Fatalf("save token: %v", err)
	}
}

// newServer поднимает тестовый сервер и конфиг, указывающий на него.
func newServer(t *testing.T, h http.HandlerFunc) *config.Config {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return &config.Config{ServerURL: ts.URL}
}
