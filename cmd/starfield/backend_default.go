//go:build !sdl

package main

const defaultBackend = "tui"
