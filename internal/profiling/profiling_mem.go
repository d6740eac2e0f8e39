//go:build profiling_mem

package profiling

import (
	"fmt"

	"github.com/pkg/profile"
)

// Start begins heap profiling for the process lifetime; call Stop to flush.
func Start() Stopper {
	fmt.Println("MEM PROFILING BUILD")
	return profile.Start(
		profile.MemProfile,
		profile.ProfilePath("."),
	)
}
