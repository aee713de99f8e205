package fdisk

/*
#cgo pkg-config: fdisk
#include <libfdisk/libfdisk.h>
#include <stdlib.h>
*/
import "C"

import (
	"github.com/sirupsen/logrus"

	"github.com/fdiskit/fdiskit/internal/gc"
)

// Context is a partitioning session bound to one device or image file.
//
// The Context exclusively owns the native context handle and the arena of
// every sub-object pointer handed out through it. Borrows obtained from a
// Context (Partition, Label, Table, ...) are valid only while the Context
// is open; structural changes such as re-creating the partition table may
// invalidate earlier borrows on the native side, which remains a caller
// discipline.
//
// Context is NOT thread-safe.
type Context struct {
	cxt    *C.struct_fdisk_context
	arena  *gc.Arena
	parent *Context // set for nested contexts
	closed bool
}

// newContext wraps a freshly allocated native context.
func newContext(cxt *C.struct_fdisk_context) *Context {
	return &Context{cxt: cxt, arena: gc.New(releasers)}
}

// Nested creates a child context for a nested label (e.g. a BSD slice
// inside a DOS partition). The child shares device properties with the
// parent but owns its own arena.
func (c *Context) Nested(name string) (*Context, error) {
	if c.closed {
		return nil, ErrClosed
	}
	cname, err := cString(name)
	if err != nil {
		return nil, err
	}
	defer freeCString(cname)

	nested := C.fdisk_new_nested_context(c.cxt, cname)
	if nested == nil {
		return nil, nativeNull("fdisk_new_nested_context")
	}
	child := newContext(nested)
	child.parent = c
	return child, nil
}

// Close releases every arena-registered sub-object exactly once and then
// the native context itself. Close is idempotent.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.arena.Close()
	C.fdisk_unref_context(c.cxt)
	c.cxt = nil
}

// Closed reports whether the context has been closed.
func (c *Context) Closed() bool { return c.closed }

// DeviceName returns the assigned device path, or "" when unassigned.
func (c *Context) DeviceName() string {
	if c.closed {
		return ""
	}
	return goString(C.fdisk_get_devname(c.cxt))
}

// DeviceNumber returns the device number, 0 for image files.
func (c *Context) DeviceNumber() (uint64, error) {
	if c.closed {
		return 0, ErrClosed
	}
	return uint64(C.fdisk_get_devno(c.cxt)), nil
}

// DeviceModel returns the device model string when the device exposes one.
func (c *Context) DeviceModel() (string, bool) {
	if c.closed {
		return "", false
	}
	p := C.fdisk_get_devmodel(c.cxt)
	if p == nil {
		logrus.WithField("op", "fdisk_get_devmodel").Debug("fdisk: null device model")
		return "", false
	}
	return C.GoString(p), true
}

// IsReadOnly reports whether the device was assigned read-only.
func (c *Context) IsReadOnly() bool {
	return c.closed || C.fdisk_is_readonly(c.cxt) != 0
}

// DeviceInUse reports whether the kernel currently uses the device.
func (c *Context) DeviceInUse() bool {
	return !c.closed && C.fdisk_device_is_used(c.cxt) != 0
}

// SectorCount returns the device size in logical sectors.
func (c *Context) SectorCount() (uint64, error) {
	if c.closed {
		return 0, ErrClosed
	}
	return uint64(C.fdisk_get_nsectors(c.cxt)), nil
}

// SizeInBytes returns the device size in bytes.
func (c *Context) SizeInBytes() (uint64, error) {
	n, err := c.SectorCount()
	if err != nil {
		return 0, err
	}
	ssz, err := c.SectorSize()
	if err != nil {
		return 0, err
	}
	return n * ssz, nil
}

// SectorSize returns the logical sector size in bytes.
func (c *Context) SectorSize() (uint64, error) {
	if c.closed {
		return 0, ErrClosed
	}
	return uint64(C.fdisk_get_sector_size(c.cxt)), nil
}

// PhysicalSectorSize returns the physical sector size in bytes.
func (c *Context) PhysicalSectorSize() (uint64, error) {
	if c.closed {
		return 0, ErrClosed
	}
	return uint64(C.fdisk_get_physector_size(c.cxt)), nil
}

// MinimalIOSize returns the minimum I/O size reported by the device.
func (c *Context) MinimalIOSize() (uint64, error) {
	if c.closed {
		return 0, ErrClosed
	}
	return uint64(C.fdisk_get_minimal_iosize(c.cxt)), nil
}

// OptimalIOSize returns the optimal I/O size reported by the device.
func (c *Context) OptimalIOSize() (uint64, error) {
	if c.closed {
		return 0, ErrClosed
	}
	return uint64(C.fdisk_get_optimal_iosize(c.cxt)), nil
}

// AlignmentOffset returns the device alignment offset in bytes.
func (c *Context) AlignmentOffset() (uint64, error) {
	if c.closed {
		return 0, ErrClosed
	}
	return uint64(C.fdisk_get_alignment_offset(c.cxt)), nil
}

// GrainSize returns the grain used to align partitions, in bytes.
func (c *Context) GrainSize() (uint64, error) {
	if c.closed {
		return 0, ErrClosed
	}
	return uint64(C.fdisk_get_grain_size(c.cxt)), nil
}

// FirstLBA returns the first usable logical block address.
func (c *Context) FirstLBA() (uint64, error) {
	if c.closed {
		return 0, ErrClosed
	}
	return uint64(C.fdisk_get_first_lba(c.cxt)), nil
}

// LastLBA returns the last usable logical block address.
func (c *Context) LastLBA() (uint64, error) {
	if c.closed {
		return 0, ErrClosed
	}
	return uint64(C.fdisk_get_last_lba(c.cxt)), nil
}

// AlignLBA aligns lba according to the label's alignment rules.
func (c *Context) AlignLBA(lba uint64, direction AlignDirection) (uint64, error) {
	if c.closed {
		return 0, ErrClosed
	}
	return uint64(C.fdisk_align_lba(c.cxt, C.fdisk_sector_t(lba), C.int(direction))), nil
}

// AlignDirection selects how AlignLBA rounds.
type AlignDirection int

// Alignment directions, mirroring the native FDISK_ALIGN_* constants.
const (
	AlignUp      AlignDirection = C.FDISK_ALIGN_UP
	AlignDown    AlignDirection = C.FDISK_ALIGN_DOWN
	AlignNearest AlignDirection = C.FDISK_ALIGN_NEAREST
)

// RereadPartitionTable asks the kernel to re-read the partition table.
func (c *Context) RereadPartitionTable() error {
	if c.closed {
		return ErrClosed
	}
	if rc := int(C.fdisk_reread_partition_table(c.cxt)); rc != 0 {
		return nativeErr("fdisk_reread_partition_table", rc)
	}
	return nil
}

// DeassignDevice closes the device file descriptor. With nosync set,
// buffered changes are not flushed to disk first.
func (c *Context) DeassignDevice(nosync bool) error {
	if c.closed {
		return ErrClosed
	}
	if rc := int(C.fdisk_deassign_device(c.cxt, cbool(nosync))); rc != 0 {
		return nativeErr("fdisk_deassign_device", rc)
	}
	return nil
}

// ReassignDevice re-opens the assigned device, dropping in-memory changes.
func (c *Context) ReassignDevice() error {
	if c.closed {
		return ErrClosed
	}
	if rc := int(C.fdisk_reassign_device(c.cxt)); rc != 0 {
		return nativeErr("fdisk_reassign_device", rc)
	}
	return nil
}

// HasWipe reports whether the context is set to wipe stale signatures.
func (c *Context) HasWipe() bool {
	return !c.closed && C.fdisk_has_wipe(c.cxt) != 0
}

// cbool converts to the native int-flag convention.
func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

// nativeNull logs a null pointer returned where an object was required
// and produces a Creation error naming the failing call.
func nativeNull(op string) error {
	logrus.WithField("op", op).Debug("fdisk: native call returned null")
	return ErrCreation
}
