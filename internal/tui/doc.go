// Package tui implements the live plot viewer: a Bubble Tea program
// that animates a function on the braille canvas with a stats panel
// and cycleable color themes.
package tui
