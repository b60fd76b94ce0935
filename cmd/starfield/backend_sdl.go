//go:build sdl

package main

import (
	// Native backend, needs cgo and SDL2
	_ "github.com/vovakirdan/starfield/internal/platform/sdl"
)

const defaultBackend = "sdl"
