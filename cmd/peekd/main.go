// Command peekd runs the notch activity engine: it follows the media
// player, drives volume and brightness, keeps a countdown and mirrors the
// sneak peek to desktop notifications.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
