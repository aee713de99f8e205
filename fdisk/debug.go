package fdisk

/*
#include <libfdisk/libfdisk.h>
*/
import "C"

import "github.com/fdiskit/fdiskit/internal/dbg"

// debugAll enables every native debug subsystem.
const debugAll = 0xffff

// EnableDebug initializes the native debug mask for the whole process.
// A mask of 0 lets the native library read LIBFDISK_DEBUG from the
// environment. The first initialization wins; later calls, through
// either entry point, are no-ops.
func EnableDebug(mask uint32) {
	dbg.Init(mask, func(m uint32) {
		C.fdisk_init_debug(C.int(m))
	})
}

// EnableFullDebug initializes the native debug mode with every
// subsystem enabled. No-op if debug mode was already initialized.
func EnableFullDebug() {
	EnableDebug(debugAll)
}

// DebugMask returns the mask in effect and whether debug mode was ever
// initialized.
func DebugMask() (uint32, bool) {
	return dbg.Mask()
}
