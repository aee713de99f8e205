package fdisk

/*
#include <libfdisk/libfdisk.h>
*/
import "C"

import "fmt"

// SizeFormat selects how partition sizes are rendered in listings.
type SizeFormat int

// Size display formats, mirroring the native FDISK_SIZEUNIT_* constants.
const (
	SizeHuman SizeFormat = C.FDISK_SIZEUNIT_HUMAN
	SizeBytes SizeFormat = C.FDISK_SIZEUNIT_BYTES
)

// DisplayUnit selects the device-addressing unit used in listings.
type DisplayUnit int

const (
	UnitSectors DisplayUnit = iota
	UnitCylinders
)

func (u DisplayUnit) String() string {
	if u == UnitCylinders {
		return "cylinders"
	}
	return "sectors"
}

// ContextBuilder stages session-wide configuration and is consumed once
// by Build. Dialogs are suppressed unless EnableDialogs is called, so a
// freshly built Context never blocks waiting for interactive input.
type ContextBuilder struct {
	devPath     string
	readWrite   bool
	dialogs     bool
	wipe        bool
	details     bool
	listOnly    bool
	protectBoot bool
	sizeFmt     *SizeFormat
	unit        *DisplayUnit
	physSector  uint
	logSector   uint
	grain       uint64
}

// NewContextBuilder returns a builder with interactive dialogs
// suppressed.
func NewContextBuilder() *ContextBuilder {
	return &ContextBuilder{}
}

// Assign sets the device or image file the context binds to. Assignment
// itself happens as the final step of Build.
func (b *ContextBuilder) Assign(path string) *ContextBuilder {
	b.devPath = path
	return b
}

// ReadWrite opens the device writable. The default is read-only.
func (b *ContextBuilder) ReadWrite() *ContextBuilder {
	b.readWrite = true
	return b
}

// EnableDialogs keeps the native library's interactive dialogs active.
func (b *ContextBuilder) EnableDialogs() *ContextBuilder {
	b.dialogs = true
	return b
}

// Wipe marks existing filesystem and table signatures for wiping when
// the new label is written.
func (b *ContextBuilder) Wipe() *ContextBuilder {
	b.wipe = true
	return b
}

// Details enables detail output in native listings.
func (b *ContextBuilder) Details() *ContextBuilder {
	b.details = true
	return b
}

// ListOnly restricts the session to listing; the device is never
// modified.
func (b *ContextBuilder) ListOnly() *ContextBuilder {
	b.listOnly = true
	return b
}

// ProtectBootBits keeps the first sector's boot bits when creating a
// new label.
func (b *ContextBuilder) ProtectBootBits() *ContextBuilder {
	b.protectBoot = true
	return b
}

// SizeFormat sets the size display format.
func (b *ContextBuilder) SizeFormat(f SizeFormat) *ContextBuilder {
	b.sizeFmt = &f
	return b
}

// Unit sets the device-addressing unit used in listings.
func (b *ContextBuilder) Unit(u DisplayUnit) *ContextBuilder {
	b.unit = &u
	return b
}

// SectorSize overrides the physical and logical sector sizes the device
// reports; applied when the device is assigned.
func (b *ContextBuilder) SectorSize(physical, logical uint) *ContextBuilder {
	b.physSector = physical
	b.logSector = logical
	return b
}

// Grain overrides the alignment grain in bytes; applied when the device
// is assigned.
func (b *ContextBuilder) Grain(bytes uint64) *ContextBuilder {
	b.grain = bytes
	return b
}

// Build creates the native context, applies the staged configuration and
// finally assigns the device. A native assignment failure releases the
// fresh context and surfaces as a typed error.
func (b *ContextBuilder) Build() (*Context, error) {
	cxt := C.fdisk_new_context()
	if cxt == nil {
		return nil, nativeNull("fdisk_new_context")
	}
	c := newContext(cxt)
	fail := func(err error) (*Context, error) {
		c.Close()
		return nil, err
	}

	if !b.dialogs {
		if rc := int(C.fdisk_disable_dialogs(cxt, 1)); rc != 0 {
			return fail(nativeErr("fdisk_disable_dialogs", rc))
		}
	}
	if b.details {
		if rc := int(C.fdisk_enable_details(cxt, 1)); rc != 0 {
			return fail(nativeErr("fdisk_enable_details", rc))
		}
	}
	if b.listOnly {
		if rc := int(C.fdisk_enable_listonly(cxt, 1)); rc != 0 {
			return fail(nativeErr("fdisk_enable_listonly", rc))
		}
	}
	if b.protectBoot {
		if rc := int(C.fdisk_enable_bootbits_protection(cxt, 1)); rc != 0 {
			return fail(nativeErr("fdisk_enable_bootbits_protection", rc))
		}
	}
	if b.sizeFmt != nil {
		if rc := int(C.fdisk_set_size_unit(cxt, C.int(*b.sizeFmt))); rc != 0 {
			return fail(fmt.Errorf("%w: size format %d: %v",
				ErrConfig, int(*b.sizeFmt), nativeErr("fdisk_set_size_unit", rc)))
		}
	}
	if b.unit != nil {
		cu, err := cString(b.unit.String())
		if err != nil {
			return fail(err)
		}
		rc := int(C.fdisk_set_unit(cxt, cu))
		freeCString(cu)
		if rc != 0 {
			return fail(fmt.Errorf("%w: unit %s: %v",
				ErrConfig, *b.unit, nativeErr("fdisk_set_unit", rc)))
		}
	}
	if b.physSector != 0 || b.logSector != 0 {
		if rc := int(C.fdisk_save_user_sector_size(cxt,
			C.uint(b.physSector), C.uint(b.logSector))); rc != 0 {
			return fail(nativeErr("fdisk_save_user_sector_size", rc))
		}
	}
	if b.grain != 0 {
		if rc := int(C.fdisk_save_user_grain(cxt, C.ulong(b.grain))); rc != 0 {
			return fail(nativeErr("fdisk_save_user_grain", rc))
		}
	}

	if b.devPath != "" {
		cdev, err := cString(b.devPath)
		if err != nil {
			return fail(err)
		}
		rc := int(C.fdisk_assign_device(cxt, cdev, cbool(!b.readWrite)))
		freeCString(cdev)
		if rc != 0 {
			return fail(nativeErr("fdisk_assign_device", rc))
		}
		if b.wipe {
			if rc := int(C.fdisk_enable_wipe(cxt, 1)); rc != 0 {
				return fail(nativeErr("fdisk_enable_wipe", rc))
			}
		}
	}

	return c, nil
}
