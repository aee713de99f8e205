package fdisk

/*
#include <libfdisk/libfdisk.h>
*/
import "C"

import "fmt"

// DOS-specific operations. These are inherent methods of Context rather
// than an open interface: they assume direct access to the native
// context pointer and are meaningless for any other type.

func (c *Context) requireLabel(kind LabelKind, op string) error {
	if c.closed {
		return ErrClosed
	}
	if !c.IsLabelKind(kind) {
		return fmt.Errorf("%w: %s requires a %s label", ErrConfig, op, kind)
	}
	return nil
}

// DOSMoveBegin moves the data start of the partition in slot partno
// (relevant for logical partitions inside an extended container).
func (c *Context) DOSMoveBegin(partno uint) error {
	if err := c.requireLabel(LabelDOS, "move-begin"); err != nil {
		return err
	}
	if rc := int(C.fdisk_dos_move_begin(c.cxt, C.size_t(partno))); rc != 0 {
		return nativeErr("fdisk_dos_move_begin", rc)
	}
	return nil
}

// DOSToggleActive toggles the bootable (active) flag of slot partno.
func (c *Context) DOSToggleActive(partno uint) error {
	if err := c.requireLabel(LabelDOS, "toggle-active"); err != nil {
		return err
	}
	return c.ToggleFlag(partno, FlagDOSActive)
}

// DOSEnableCompatible toggles DOS-compatible mode on the label driver.
func (l *Label) DOSEnableCompatible(enable bool) error {
	if l.owner.closed {
		return ErrClosed
	}
	if rc := int(C.fdisk_dos_enable_compatible(l.lb, cbool(enable))); rc != 0 {
		return nativeErr("fdisk_dos_enable_compatible", rc)
	}
	return nil
}

// DOSIsCompatible reports whether DOS-compatible mode is enabled.
func (l *Label) DOSIsCompatible() bool {
	return !l.owner.closed && C.fdisk_dos_is_compatible(l.lb) != 0
}
