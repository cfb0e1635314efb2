package main

// Exit codes
const (
	ExitSuccess = 0 // Success, with or without changes needed
	ExitError   = 1 // Configuration error or any other failure
)
