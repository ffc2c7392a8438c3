// Package authbus carries the forced-logout signal from the transport layer
// to the session layer without a dependency cycle: the HTTP client fires it,
// the session manager reacts to it.
package authbus

import "sync"

// ReasonTokenExpired is the reason recorded when an authenticated request
// is rejected with 401.
const ReasonTokenExpired = "token_expired"

// Bus is a single-slot logout signal. At most one handler is registered at a
// time; registering again replaces the previous handler. This is deliberately
// not a broadcast: the session manager is the only intended subscriber.
type Bus struct {
	mu      sync.Mutex
	handler func(reason string)
	reason  string
}

func New() *Bus {
	return &Bus{}
}

// Register installs h as the logout handler, replacing any previous one.
func (b *Bus) Register(h func(reason string)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handler = h
}

// Trigger records reason (an empty reason clears the slot) and then invokes
// the registered handler synchronously. With no handler registered the call
// only records the reason.
func (b *Bus) Trigger(reason string) {
	b.mu.Lock()
	b.reason = reason
	h := b.handler
	b.mu.Unlock()

	if h != nil {
		h(reason)
	}
}

// Reason returns the last recorded logout reason, or "".
func (b *Bus) Reason() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reason
}

// ClearReason resets the recorded reason after it has been shown to the user.
func (b *Bus) ClearReason() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reason = ""
}
