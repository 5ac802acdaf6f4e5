package history

// Package history implements the bounded scan/generate history. The list is
// kept in memory, most recent first, capped at a fixed capacity, and mirrored
// as a single JSON array under one key of a key-value Backend. Mutations are
// applied synchronously; persistence runs on a background writer so the UI
// never waits on storage, and a failed write only leaves storage stale.
