// Package canvas renders 2D numeric data as text using Unicode Braille
// glyphs for sub-character resolution and ANSI 256-color escapes for
// per-cell coloring.
//
//   - [Params]: logical viewport geometry and per-axis scale functions
//   - [Canvas]: the dot-cell rendering surface with Point/Line/Render
//   - [Style]: glyph style descriptor (2x4 braille dots or 1x1 markers)
//   - [Color]: ANSI 256-color palette values
//
// Draw calls take logical coordinates; the canvas owns the transform to
// pixel space (origin, flips, scale functions) and the bit packing into
// Braille Patterns codepoints. Rendering is pure: Render may be called
// any number of times, before or after draws.
//
//	cv, err := canvas.New(canvas.Params{Width: 10, Height: 10, Resolution: 1})
//	if err != nil {
//	    return err
//	}
//	cv.Line(0, 0, 9, 9, canvas.ColorRed)
//	fmt.Println(cv.Render())
//
// The canvas is not safe for concurrent mutation; a single goroutine
// owns it for its lifetime.
package canvas
