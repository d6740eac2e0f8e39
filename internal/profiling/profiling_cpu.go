//go:build profiling_cpu

package profiling

import (
	"fmt"

	"github.com/pkg/profile"
)

// Start begins CPU profiling for the process lifetime; call Stop to flush.
func Start() Stopper {
	fmt.Println("CPU PROFILING BUILD")
	return profile.Start(
		profile.CPUProfile,
		profile.ProfilePath("."),
	)
}
