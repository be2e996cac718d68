//go:build windows

package stderr

// Capture is never active on Windows.
type Capture struct{}

// Start is a no-op on Windows: nothing writes to the console behind the
// view there. The returned nil Capture is safe to Stop.
func Start(func(string)) (*Capture, error) {
	return nil, nil
}

// Stop is a no-op on Windows.
func (c *Capture) Stop() {}
