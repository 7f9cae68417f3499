package notify

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

// lastCookie returns the final Set-Cookie value for CookieName, which is what
// a browser keeps.
func lastCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	var found *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == CookieName {
			found = ck
		}
	}
	require.NotNil(t, found, "no %s cookie set", CookieName)
	return found
}

func set(t *testing.T, f *Flasher, apply func(c *gin.Context)) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	apply(c)
	return lastCookie(t, w)
}

func pop(f *Flasher, ck *http.Cookie) (Notice, bool, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if ck != nil {
		c.Request.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
	}
	n, ok := f.Pop(c)
	return n, ok, w
}

func TestFlasher_TransientNoticeRoundTrip(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	f := NewFlasher(5 * time.Second).WithClock(clock.now)

	ck := set(t, f, func(c *gin.Context) { f.Success(c, "Success! New animal added with ID: 12") })
	assert.Equal(t, 5, ck.MaxAge)

	n, ok, w := pop(f, ck)
	require.True(t, ok)
	assert.Equal(t, KindSuccess, n.Kind)
	assert.Equal(t, "Success! New animal added with ID: 12", n.Text)
	assert.Equal(t, "result-message success-message", n.Class())

	cleared := lastCookie(t, w)
	assert.Less(t, cleared.MaxAge, 0)
}

func TestFlasher_TransientNoticeExpires(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	f := NewFlasher(5 * time.Second).WithClock(clock.now)

	ck := set(t, f, func(c *gin.Context) { f.Error(c, "Error: Shelter is full") })

	clock.t = clock.t.Add(5 * time.Second)
	_, ok, _ := pop(f, ck)
	assert.False(t, ok)
}

func TestFlasher_LastNoticeWins(t *testing.T) {
	f := NewFlasher(5 * time.Second)

	ck := set(t, f, func(c *gin.Context) {
		f.Success(c, "first")
		f.Error(c, "second")
	})

	n, ok, _ := pop(f, ck)
	require.True(t, ok)
	assert.Equal(t, "second", n.Text)
	assert.True(t, n.IsError())
}

func TestFlasher_AcknowledgmentDoesNotExpire(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	f := NewFlasher(5 * time.Second).WithClock(clock.now)

	ck := set(t, f, func(c *gin.Context) { f.Acknowledge(c, KindSuccess, "Shelter ID 4 deleted successfully.") })
	assert.Equal(t, 0, ck.MaxAge)

	clock.t = clock.t.Add(time.Hour)
	n, ok, _ := pop(f, ck)
	require.True(t, ok)
	assert.True(t, n.Modal)
	assert.Equal(t, "Shelter ID 4 deleted successfully.", n.Text)
}

func TestFlasher_PopWithoutCookie(t *testing.T) {
	f := NewFlasher(0)
	assert.Equal(t, DefaultTTL, f.TTL())

	_, ok, _ := pop(f, nil)
	assert.False(t, ok)

	_, ok, _ = pop(f, &http.Cookie{Name: CookieName, Value: "%%%not-base64"})
	assert.False(t, ok)
}
