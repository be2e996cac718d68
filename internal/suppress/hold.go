package suppress

// Hold binds one token to one channel for the lifetime of a surface.
// Release must be called when the surface goes away.
type Hold struct {
	reg      *Registry
	ch       Channel
	tok      Token
	released bool
}

// NewHold mints a token for owner on ch. The hold starts inactive.
func (r *Registry) NewHold(ch Channel, owner string) *Hold {
	return &Hold{reg: r, ch: ch, tok: NewToken(owner)}
}

// Set votes active or not. No-op after Release.
func (h *Hold) Set(active bool) {
	if h.released {
		return
	}
	h.reg.SetActive(h.ch, h.tok, active)
}

// Release removes the token from the registry. Safe to call twice.
func (h *Hold) Release() {
	if h.released {
		return
	}
	h.released = true
	h.reg.Remove(h.ch, h.tok)
}

// Token returns the underlying token.
func (h *Hold) Token() Token {
	return h.tok
}
