package filesystem

import "runtime"

// osDefaultCaseSensitive is the fallback when the probe cannot run: Windows
// and macOS are case-insensitive by default, everything else is not.
func osDefaultCaseSensitive() bool {
	switch runtime.GOOS {
	case "windows", "darwin", "ios":
		return false
	default:
		return true
	}
}
