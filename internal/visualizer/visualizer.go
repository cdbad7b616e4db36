// Package visualizer draws the particle field in a terminal: a braille dot
// surface with ANSI colour, a pointer-following glow, and a frame clock.
package visualizer
