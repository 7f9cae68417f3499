package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/shelter-admin/service-shelter-web/internal/notify"
	"github.com/shelter-admin/service-shelter-web/internal/platform/httpclient"
	"github.com/shelter-admin/service-shelter-web/internal/view"
)

// Pages renders full pages and moves notices across the post/redirect/get cycle.
type Pages struct {
	flash *notify.Flasher
}

// NewPages creates a Pages helper backed by flash.
func NewPages(flash *notify.Flasher) *Pages {
	return &Pages{flash: flash}
}

// Render writes tmpl with the page build returns. The pending notice is read
// before build runs, so a slow backend cannot outlast its expiry.
func (p *Pages) Render(c *gin.Context, tmpl string, build func() view.Page) {
	n, ok := p.flash.Pop(c)
	page := build()
	if ok {
		page.Notice = &n
	}
	p.write(c, http.StatusOK, tmpl, page)
}

// Reject answers a failed create in place: the form keeps the submitted
// values and text shows as a transient error. Any pending notice is dropped.
func (p *Pages) Reject(c *gin.Context, tmpl string, build func() view.Page, text string) {
	p.flash.Pop(c)
	page := build()
	page.Notice = &notify.Notice{Kind: notify.KindError, Text: text}
	page.Form = submitted(c)
	p.write(c, http.StatusUnprocessableEntity, tmpl, page)
}

func (p *Pages) write(c *gin.Context, status int, tmpl string, page view.Page) {
	page.FadeMS = p.flash.TTL().Milliseconds()
	c.HTML(status, tmpl, page)
}

// Success queues a transient confirmation and redirects to path.
func (p *Pages) Success(c *gin.Context, path, text string) {
	p.flash.Success(c, text)
	seeOther(c, path)
}

// Failure queues a transient error and redirects to path.
func (p *Pages) Failure(c *gin.Context, path, text string) {
	p.flash.Error(c, text)
	seeOther(c, path)
}

// Acknowledge queues a modal result and redirects to path.
func (p *Pages) Acknowledge(c *gin.Context, path string, kind notify.Kind, text string) {
	p.flash.Acknowledge(c, kind, text)
	seeOther(c, path)
}

func seeOther(c *gin.Context, path string) {
	c.Redirect(http.StatusSeeOther, path)
}

// confirmed reports whether a dialog was answered with OK.
func confirmed(c *gin.Context) bool {
	return c.PostForm("confirm") == "yes"
}

func formInt(c *gin.Context, key string) (int, error) {
	raw := strings.TrimSpace(c.PostForm(key))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return v, nil
}

// submitted returns the first value of every posted form field.
func submitted(c *gin.Context) map[string]string {
	if err := c.Request.ParseForm(); err != nil {
		return nil
	}
	out := make(map[string]string, len(c.Request.PostForm))
	for k, v := range c.Request.PostForm {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}

// rowFields are the hidden inputs a dialog sends back with its answer.
func rowFields(c *gin.Context, keys ...string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := c.GetPostForm(k); ok {
			out[k] = v
		}
	}
	return out
}

// bindMessage turns a form binding failure into user-facing text.
func bindMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
		return strings.Join(msgs, ", ")
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return fmt.Sprintf("invalid number %q", numErr.Num)
	}
	return err.Error()
}

// errorText is the "Error: <message>" line shown for failed requests.
func errorText(err error) string {
	return "Error: " + httpclient.Message(err)
}
