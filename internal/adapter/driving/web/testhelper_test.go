package web

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/beatzboy/site/internal/adapter/driven/content"
	"github.com/beatzboy/site/internal/application"
)

// fakeClock fires scheduled callbacks only when Advance moves time past their deadline.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	clock    *fakeClock
	deadline time.Duration
	f        func()
	done     bool
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) application.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, deadline: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.done && t.deadline <= c.now {
			t.done = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

func (c *fakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.done {
			n++
		}
	}
	return n
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}

// waitForPending blocks until n timers are scheduled on clock.
func waitForPending(t *testing.T, clock *fakeClock, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return clock.Pending() == n }, 2*time.Second, time.Millisecond)
}

// flushRecorder records a snapshot of the body at every flush.
type flushRecorder struct {
	*httptest.ResponseRecorder
	mu        sync.Mutex
	snapshots []string
}

func newFlushRecorder() *flushRecorder {
	return &flushRecorder{ResponseRecorder: httptest.NewRecorder()}
}

func (f *flushRecorder) Flush() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ResponseRecorder.Flush()
	f.snapshots = append(f.snapshots, f.Body.String())
}

func (f *flushRecorder) Snapshots() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.snapshots...)
}

// noFlushWriter hides every optional interface of the wrapped writer.
type noFlushWriter struct {
	w http.ResponseWriter
}

func (n noFlushWriter) Header() http.Header         { return n.w.Header() }
func (n noFlushWriter) Write(b []byte) (int, error) { return n.w.Write(b) }
func (n noFlushWriter) WriteHeader(status int)      { n.w.WriteHeader(status) }

// newTestHandler builds a Handler over the embedded site content.
func newTestHandler(t *testing.T, clock application.Clock, splashEnabled bool) *Handler {
	t.Helper()
	site, err := application.LoadSite(context.Background(), content.NewSource(""),
		application.DefaultPages(2000*time.Millisecond, 1500*time.Millisecond), clock)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewHandler(site, splashEnabled, logger)
}

// parseHTML parses the provided HTML payload into a goquery document for assertions.
func parseHTML(t testing.TB, body string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(body)))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}
