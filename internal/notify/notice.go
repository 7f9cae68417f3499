package notify

import "time"

// Kind separates confirmations from failures.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notice is a one-shot message shown on the next rendered page.
//
// A transient notice (Modal false) disappears on its own once ExpiresAt has
// passed. A modal notice is an acknowledgment that stays until the user
// dismisses it.
type Notice struct {
	Kind      Kind      `json:"k"`
	Text      string    `json:"t"`
	Modal     bool      `json:"m,omitempty"`
	ExpiresAt time.Time `json:"e,omitempty"`
}

// IsError reports whether the notice reports a failure.
func (n Notice) IsError() bool { return n.Kind == KindError }

// Class is the CSS class list for the message element.
func (n Notice) Class() string {
	if n.IsError() {
		return "result-message error-message"
	}
	return "result-message success-message"
}

// Expired reports whether a transient notice is past its deadline at now.
func (n Notice) Expired(now time.Time) bool {
	return !n.Modal && !n.ExpiresAt.IsZero() && !now.Before(n.ExpiresAt)
}
