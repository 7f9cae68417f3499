package notify

import (
	"encoding/base64"
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieName holds the pending notice between a form post and the page it redirects to.
const CookieName = "shelter_notice"

// DefaultTTL is how long a transient notice stays visible.
const DefaultTTL = 5 * time.Second

// Flasher carries one pending notice per browser in a cookie. Setting a new
// notice replaces the pending one; there is no queue.
type Flasher struct {
	ttl time.Duration
	now func() time.Time
}

// NewFlasher creates a Flasher whose transient notices live for ttl.
func NewFlasher(ttl time.Duration) *Flasher {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Flasher{ttl: ttl, now: time.Now}
}

// WithClock returns a copy that reads time from now.
func (f *Flasher) WithClock(now func() time.Time) *Flasher {
	cp := *f
	cp.now = now
	return &cp
}

// TTL is the lifetime of transient notices.
func (f *Flasher) TTL() time.Duration { return f.ttl }

// Success queues a transient confirmation.
func (f *Flasher) Success(c *gin.Context, text string) {
	f.Set(c, Notice{Kind: KindSuccess, Text: text})
}

// Error queues a transient failure message.
func (f *Flasher) Error(c *gin.Context, text string) {
	f.Set(c, Notice{Kind: KindError, Text: text})
}

// Acknowledge queues a modal message the user has to dismiss.
func (f *Flasher) Acknowledge(c *gin.Context, kind Kind, text string) {
	f.Set(c, Notice{Kind: kind, Text: text, Modal: true})
}

// Set queues n, stamping transient notices with their expiry.
func (f *Flasher) Set(c *gin.Context, n Notice) {
	maxAge := 0
	if !n.Modal {
		n.ExpiresAt = f.now().Add(f.ttl)
		maxAge = int(math.Ceil(f.ttl.Seconds()))
	}
	raw, err := json.Marshal(n)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, base64.RawURLEncoding.EncodeToString(raw), maxAge, "/", "", false, true)
}

// Pop returns the pending notice, if any, and clears it. Expired or
// unreadable notices are cleared and ignored.
func (f *Flasher) Pop(c *gin.Context) (Notice, bool) {
	value, err := c.Cookie(CookieName)
	if err != nil || value == "" {
		return Notice{}, false
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", false, true)

	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return Notice{}, false
	}
	var n Notice
	if err := json.Unmarshal(raw, &n); err != nil {
		return Notice{}, false
	}
	if n.Expired(f.now()) {
		return Notice{}, false
	}
	return n, true
}
