package ui

// Package ui contains the Fyne-based user interface for the application.
// It wires the scanner, generator and history screens to their controllers
// and the history store, and renders results, previews and settings. All UI
// strings are localized via Localization.
