package client

import "os"

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// Activation methods:
//   - YOUTUBE_DEBUG=true (client-specific debug flag)
//   - DEBUG=true (general debug flag, common in development workflows)
//
// Returns true if either environment variable is set to "true".
func debugLoggingRequested() bool {
	return os.Getenv("YOUTUBE_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
