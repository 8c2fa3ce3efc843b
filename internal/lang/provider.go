package lang

import (
	"log/slog"
	"sync"
)

// Provider hands out the shared model-backed Capability, initializing it
// lazily on first need. Concurrent callers during initialization block on the
// same sync.Once and share a single outcome; if initialization fails, every
// current and future Get returns ErrUnavailable for the process lifetime.
type Provider struct {
	open func() (Capability, error)
	log  *slog.Logger

	once sync.Once
	cap  Capability
	err  error
}

// NewProvider wraps an initializer. open is called at most once.
func NewProvider(open func() (Capability, error), log *slog.Logger) *Provider {
	if log == nil {
		log = slog.Default()
	}
	return &Provider{open: open, log: log}
}

// Unavailable returns a Provider whose capability is permanently absent.
// Used when no model backend is configured at all.
func Unavailable() *Provider {
	p := &Provider{}
	p.once.Do(func() { p.err = ErrUnavailable })
	return p
}

// Get returns the shared Capability, initializing it on first call.
func (p *Provider) Get() (Capability, error) {
	p.once.Do(func() {
		if p.open == nil {
			p.err = ErrUnavailable
			return
		}
		c, err := p.open()
		if err != nil {
			p.log.Warn("language backend unavailable, using rule fallbacks", "error", err)
			p.err = ErrUnavailable
			return
		}
		p.cap = c
	})
	return p.cap, p.err
}
