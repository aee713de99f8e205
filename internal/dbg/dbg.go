// Package dbg holds the process-wide debug-mode gate for the native
// library. The native debug mask can be initialized once per process;
// whichever call arrives first wins and later calls are silent no-ops.
package dbg

import "sync"

var (
	once sync.Once
	mask uint32
	set  bool
)

// Init applies the debug mask through apply if no mask has been set yet,
// and returns the mask that is in effect afterwards.
func Init(m uint32, apply func(uint32)) uint32 {
	once.Do(func() {
		mask = m
		set = true
		if apply != nil {
			apply(m)
		}
	})
	return mask
}

// Mask returns the mask in effect and whether one was ever set.
func Mask() (uint32, bool) {
	return mask, set
}

// reset is test support only; the production gate is write-once.
func reset() {
	once = sync.Once{}
	mask = 0
	set = false
}
