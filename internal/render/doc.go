package render

// Package render draws the placeholder code shown for a payload. The
// pattern only imitates the look of a QR symbol (three finder squares and a
// value-dependent fill) and cannot be decoded by a scanner.
