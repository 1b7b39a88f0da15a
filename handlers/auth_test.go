package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"founderforge/services/session"
)

func TestIdentityResolve(t *testing.T) {
	sessions := session.NewStore(time.Hour)
	token := sessions.Create("user-1")
	identity := NewIdentity(sessions)

	tests := []struct {
		name   string
		header map[string]string
		userID string
		ok     bool
	}{
		{name: "valid bearer token", header: map[string]string{"Authorization": "Bearer " + token}, userID: "user-1", ok: true},
		{name: "unknown bearer token", header: map[string]string{"Authorization": "Bearer bogus"}, ok: false},
		{name: "header fallback", header: map[string]string{"X-User-ID": "user-2"}, userID: "user-2", ok: true},
		{name: "bearer wins over header", header: map[string]string{"Authorization": "Bearer " + token, "X-User-ID": "user-2"}, userID: "user-1", ok: true},
		{name: "invalid bearer does not fall back", header: map[string]string{"Authorization": "Bearer bogus", "X-User-ID": "user-2"}, ok: false},
		{name: "no identity", header: nil, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/memory", nil)
			for k, v := range tt.header {
				r.Header.Set(k, v)
			}
			userID, ok := identity.Resolve(r)
			if ok != tt.ok || userID != tt.userID {
				t.Errorf("Resolve = (%q, %t), want (%q, %t)", userID, ok, tt.userID, tt.ok)
			}
		})
	}
}
