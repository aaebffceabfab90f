package env

import (
	"os"
)

// Debug reports whether DEBUG is set, which forces debug logging on.
func Debug() bool {
	return os.Getenv("DEBUG") != ""
}
