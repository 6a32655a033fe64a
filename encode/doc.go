// Package encode writes a parsed ir.XFile back out as XResources
// text, whitespace normalized, with optional terminal colors and
// optional definition resolution.
package encode
