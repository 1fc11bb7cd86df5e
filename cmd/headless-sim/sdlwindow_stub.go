//go:build !sdlwindow

package main

import "errors"

// runSDLInputProbe's default-build stub: the SDL adapter in sdlwindow.go
// only compiles under `-tags sdlwindow` (it links libSDL2, which most CI
// environments don't carry), so the flag that would invoke it fails fast
// with a clear message instead of silently doing nothing.
func runSDLInputProbe(ticks int) error {
	return errors.New("headless-sim was not built with -tags sdlwindow")
}
