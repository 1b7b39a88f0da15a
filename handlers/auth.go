package handlers

import (
	"net/http"
	"strings"

	"founderforge/services/session"
)

// Identity resolves the requesting user. Session tokens come from the
// injected session store; the X-User-ID header is the trusted-front-end path
// where the authentication collaborator terminates upstream.
type Identity struct {
	sessions *session.Store
}

func NewIdentity(sessions *session.Store) *Identity {
	return &Identity{sessions: sessions}
}

func (i *Identity) Resolve(r *http.Request) (string, bool) {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return i.sessions.Resolve(strings.TrimPrefix(auth, "Bearer "))
	}
	if userID := r.Header.Get("X-User-ID"); userID != "" {
		return userID, true
	}
	return "", false
}
