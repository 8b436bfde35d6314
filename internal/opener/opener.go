// Package opener launches URLs in the user's default handler.
package opener

import (
	"log/slog"
	"sync"

	"github.com/skratchdot/open-golang/open"
)

// Opener hands a URL to something that can open it. Open must not block on
// the launched program.
type Opener interface {
	Open(url string) error
}

// System opens URLs with the platform handler (xdg-open, open, or
// rundll32 depending on the OS). The child is started and never waited on.
type System struct{}

// Open starts the handler for url and returns once it has been spawned.
func (System) Open(url string) error {
	return open.Start(url)
}

// Detached wraps an Opener so that launch failures are logged at debug level
// and otherwise discarded.
type Detached struct {
	Opener Opener
}

// Open calls the wrapped opener and always returns nil.
func (d Detached) Open(url string) error {
	if err := d.Opener.Open(url); err != nil {
		slog.Debug("url handler failed to start", "url", url, "err", err)
	}
	return nil
}

// Recorder is an Opener that remembers every URL it was asked to open.
// It never launches anything.
type Recorder struct {
	mu   sync.Mutex
	urls []string
	// Err, when set, is returned from every Open call.
	Err error
}

// Open records url.
func (r *Recorder) Open(url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, url)
	return r.Err
}

// URLs returns the recorded URLs in call order.
func (r *Recorder) URLs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.urls))
	copy(out, r.urls)
	return out
}
