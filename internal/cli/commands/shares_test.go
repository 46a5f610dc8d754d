package commands

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestShares_Run(t *testing.T) {
	loggedIn(t, "tok")
	cfg := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/shares":
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error":"file already shared with this user"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/api/shares/f1":
			_, _ = w.Write([]byte(`[{"file_id":"f1","shared_with_email":"bob@example.com","role":"viewer"}]`))
		case r.Method == http.MethodDelete && r.URL.Path == "/api/shares/f1":
			if r.URL.Query().Get("email") != "bob@example.com" {
				t.Fatalf("email not passed: %s", r.URL.RawQuery)
			}
			_, _ = w.Write([]byte(`{"message":"Share revoked"}`))
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})

	err := (shareCmd{}).Run(context.Background(), cfg, []string{"f1", "bob@example.com", "viewer"})
	if err == nil || !strings.Contains(err.Error(), "409") {
		t.Fatalf("expected conflict error, got %v", err)
	}

	out := withStdoutCapture(t, func() {
		if err := (sharesCmd{}).Run(context.Background(), cfg, []string{"f1"}); err != nil {
			t.Fatalf("shares: %v", err)
		}
		if err := (unshareCmd{}).Run(context.Background(), cfg, []string{"f1", "bob@example.com"}); err != nil {
			t.Fatalf("unshare: %v", err)
		}
	})
	if !strings.Contains(out, "bob@example.com") || !strings.Contains(out, "Share revoked") {
		t.Fatalf("unexpected output: %q", out)
	}
}
