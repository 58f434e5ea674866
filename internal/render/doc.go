// Package render draws potential curves in the terminal.
//
// Two surfaces are provided:
//
//   - [Plot]: a Braille-pixel canvas with world-coordinate projection,
//     used for overlaying curves, landmark lines and extremum markers
//   - [Ascii]: asciigraph line charts for quick per-series output
//
// Styling is lipgloss-based; see styles.go for the palette, including the
// regime colors used when labeling photon classifications.
package render
