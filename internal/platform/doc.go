package platform

// Package platform contains OS/platform integration glue: link validation,
// PNG export naming and writing, directory helpers, and OS open/reveal.
