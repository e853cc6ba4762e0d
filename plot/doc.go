// Package plot builds terminal line plots on top of the braille canvas.
//
//   - [LinePlot]: multi-series line plots with auto-fitted bounds and a
//     per-series color cycle
//   - [Series]: read-only access to (x, y) samples, with owned-buffer
//     and sampled-function implementations
//   - [BorderBox]: frames rendered plot text with borders, a title,
//     axis values and an optional legend
package plot
