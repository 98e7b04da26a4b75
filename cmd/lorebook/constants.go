package main

// Default limits for CLI commands.
const (
	DefaultSearchLimit  = 10
	DefaultRecentLimit  = 20
	DefaultHistoryLimit = 10
)
