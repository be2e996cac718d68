// Package suppress aggregates independent requests to disable an ambient
// behavior. A channel is suppressed while any registered token holds it
// active.
package suppress

import (
	"github.com/google/uuid"
)

// Channel names an ambient behavior that surfaces can vote to disable.
type Channel int

const (
	// ScrollGesture disables scroll-to-close.
	ScrollGesture Channel = iota
	// AutoClose disables the idle auto-collapse of the panel.
	AutoClose
)

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case ScrollGesture:
		return "scrollGesture"
	case AutoClose:
		return "autoClose"
	default:
		return "unknown"
	}
}

// Channels lists every channel, in display order.
var Channels = []Channel{ScrollGesture, AutoClose}

// Token identifies one requester. The zero Token is never issued.
type Token struct {
	id    uuid.UUID
	owner string
}

// NewToken mints a token for the named owner (used only for display).
func NewToken(owner string) Token {
	return Token{id: uuid.New(), owner: owner}
}

// Owner returns the name given to NewToken.
func (t Token) Owner() string {
	return t.owner
}

// String returns a short, human-readable identity.
func (t Token) String() string {
	return t.owner + "#" + t.id.String()[:8]
}

// ChannelChange is emitted when a channel's aggregate state flips.
type ChannelChange struct {
	Channel Channel
	Active  bool
}

// Registry holds, per channel, the active flag of every token.
// Not safe for concurrent use; call it from the engine loop.
type Registry struct {
	channels  map[Channel]map[Token]bool
	listeners map[int]func(ChannelChange)
	nextID    int
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		channels:  make(map[Channel]map[Token]bool),
		listeners: make(map[int]func(ChannelChange)),
	}
}

// SetActive records tok's vote on ch. Setting the same value twice is a no-op.
func (r *Registry) SetActive(ch Channel, tok Token, active bool) {
	before := r.Active(ch)

	tokens := r.channels[ch]
	if tokens == nil {
		tokens = make(map[Token]bool)
		r.channels[ch] = tokens
	}
	tokens[tok] = active

	r.notifyIfFlipped(ch, before)
}

// Remove drops tok from ch. Removing an absent token is a no-op.
func (r *Registry) Remove(ch Channel, tok Token) {
	tokens, ok := r.channels[ch]
	if !ok {
		return
	}
	if _, ok := tokens[tok]; !ok {
		return
	}
	before := r.Active(ch)
	delete(tokens, tok)
	if len(tokens) == 0 {
		delete(r.channels, ch)
	}
	r.notifyIfFlipped(ch, before)
}

// RemoveAll drops tok from every channel. Surfaces call it on teardown.
func (r *Registry) RemoveAll(tok Token) {
	for _, ch := range Channels {
		r.Remove(ch, tok)
	}
}

// Active reports whether any token holds ch active.
func (r *Registry) Active(ch Channel) bool {
	for _, active := range r.channels[ch] {
		if active {
			return true
		}
	}
	return false
}

// Len returns the number of tokens registered on ch, active or not.
func (r *Registry) Len(ch Channel) int {
	return len(r.channels[ch])
}

// Holders returns the tokens currently holding ch active.
func (r *Registry) Holders(ch Channel) []Token {
	var out []Token
	for tok, active := range r.channels[ch] {
		if active {
			out = append(out, tok)
		}
	}
	return out
}

// Subscribe registers fn to be called when a channel's aggregate flips.
// fn runs synchronously inside the mutating call.
func (r *Registry) Subscribe(fn func(ChannelChange)) (unsubscribe func()) {
	id := r.nextID
	r.nextID++
	r.listeners[id] = fn
	return func() { delete(r.listeners, id) }
}

func (r *Registry) notifyIfFlipped(ch Channel, before bool) {
	after := r.Active(ch)
	if after == before {
		return
	}
	change := ChannelChange{Channel: ch, Active: after}
	for _, fn := range r.listeners {
		fn(change)
	}
}
