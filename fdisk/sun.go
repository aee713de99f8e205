package fdisk

/*
#include <libfdisk/libfdisk.h>
*/
import "C"

// SUN-specific operations, inherent methods of Context (see dos.go).
// The geometry setters are dialog-driven number prompts in the native
// library.

func (c *Context) sunDialogOp(op string, fn func() C.int) error {
	if err := c.requireLabel(LabelSun, op); err != nil {
		return err
	}
	if !c.HasDialogs() {
		return ErrDialogsDisabled
	}
	if rc := int(fn()); rc != 0 {
		return nativeErr(op, rc)
	}
	return nil
}

// SunSetAltCylinders asks for and sets the alternate cylinder count.
func (c *Context) SunSetAltCylinders() error {
	return c.sunDialogOp("fdisk_sun_set_alt_cyl", func() C.int {
		return C.fdisk_sun_set_alt_cyl(c.cxt)
	})
}

// SunSetInterleave asks for and sets the interleave factor.
func (c *Context) SunSetInterleave() error {
	return c.sunDialogOp("fdisk_sun_set_ilfact", func() C.int {
		return C.fdisk_sun_set_ilfact(c.cxt)
	})
}

// SunSetPhysicalCylinders asks for and sets the physical cylinder count.
func (c *Context) SunSetPhysicalCylinders() error {
	return c.sunDialogOp("fdisk_sun_set_pcylcount", func() C.int {
		return C.fdisk_sun_set_pcylcount(c.cxt)
	})
}

// SunSetRotationSpeed asks for and sets the rotation speed.
func (c *Context) SunSetRotationSpeed() error {
	return c.sunDialogOp("fdisk_sun_set_rspeed", func() C.int {
		return C.fdisk_sun_set_rspeed(c.cxt)
	})
}

// SunSetExtraCylinders asks for and sets the extra sectors per cylinder.
func (c *Context) SunSetExtraCylinders() error {
	return c.sunDialogOp("fdisk_sun_set_xcyl", func() C.int {
		return C.fdisk_sun_set_xcyl(c.cxt)
	})
}
