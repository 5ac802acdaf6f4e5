package classifier

// Package classifier owns the catalogue of content categories offered by the
// generator and turns raw user input into the payload that gets encoded.
// Everything here is pure: no UI, no storage, no validation of the input.
