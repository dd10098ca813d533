// Package editor provides a Bubble Tea input component backed by the
// surface package: a single text region with mention tokens, a
// submit-on-Enter shortcut, an "@" member popup and plain-text paste.
//
// The package is responsible for key and mouse handling, wrapping and
// caret rendering, placing and compositing the mention popup, and the host
// hooks (submit, cancel, extra checkbox, notices and change events).
package editor
