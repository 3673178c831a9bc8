package session

import "net/http"

// HeaderName is the HTTP header carrying the client session ID
const HeaderName = "X-Session-ID"

// FromRequest resolves the request's session from the session header,
// minting a new session when the header is absent. The resolved ID is
// echoed on the response so clients can keep it.
func FromRequest(m *Manager, w http.ResponseWriter, r *http.Request) *Session {
	s := m.Resolve(r.Header.Get(HeaderName))
	w.Header().Set(HeaderName, s.ID)
	return s
}
