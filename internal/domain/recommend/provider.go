package recommend

import "sync/atomic"

// Provider holds the engine snapshot the request path reads. Reload swaps
// in a freshly built engine; requests already holding the old snapshot
// finish against it unchanged.
type Provider struct {
	current atomic.Pointer[Engine]
}

// NewProvider returns a provider seeded with eng, which may be nil when
// the catalog source is not ready at startup.
func NewProvider(eng *Engine) *Provider {
	p := &Provider{}
	if eng != nil {
		p.current.Store(eng)
	}
	return p
}

// Snapshot returns the current engine, or nil when none has been built.
func (p *Provider) Snapshot() *Engine {
	if p == nil {
		return nil
	}
	return p.current.Load()
}

// Swap publishes eng as the engine for all subsequent requests.
func (p *Provider) Swap(eng *Engine) {
	if p == nil || eng == nil {
		return
	}
	p.current.Store(eng)
}
