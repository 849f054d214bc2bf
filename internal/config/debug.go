package config

import (
	"os"
	"strconv"
)

// IsDebug accepts RELAY_DEBUG=1 as well as the "true" the installer writes.
func IsDebug() bool {
	on, _ := strconv.ParseBool(os.Getenv("RELAY_DEBUG"))
	return on
}
