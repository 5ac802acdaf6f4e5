package model

// Package model defines domain data structures used across the app: history
// items and the drafts they are created from, render styles, and the
// generator state enum. Structures are plain values so the UI can bind them
// directly and the store can hand out copies.
