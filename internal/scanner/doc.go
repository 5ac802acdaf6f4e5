package scanner

// Package scanner turns decode events from a camera (or a manual source on
// the desktop) into scanned history items, dropping repeats that arrive
// within the cooldown window.
