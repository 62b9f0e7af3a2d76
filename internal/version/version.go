// Package version exposes build metadata stamped in through -ldflags.
package version

import (
	"fmt"
	"runtime"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("gcd %s (commit=%s, date=%s, go=%s)", Version, Commit, Date, runtime.Version())
}
