package fdisk

/*
#include <libfdisk/libfdisk.h>
*/
import "C"

// BSD-specific operations, inherent methods of Context (see dos.go).
// The edit and bootstrap operations are dialog-driven in the native
// library, so they require an interactive context.

// BSDEditLabel walks the BSD disklabel fields interactively.
func (c *Context) BSDEditLabel() error {
	if err := c.requireLabel(LabelBSD, "edit-label"); err != nil {
		return err
	}
	if !c.HasDialogs() {
		return ErrDialogsDisabled
	}
	if rc := int(C.fdisk_bsd_edit_disklabel(c.cxt)); rc != 0 {
		return nativeErr("fdisk_bsd_edit_disklabel", rc)
	}
	return nil
}

// BSDWriteBootstrap installs the BSD bootstrap on the device.
func (c *Context) BSDWriteBootstrap() error {
	if err := c.requireLabel(LabelBSD, "write-bootstrap"); err != nil {
		return err
	}
	if !c.HasDialogs() {
		return ErrDialogsDisabled
	}
	if rc := int(C.fdisk_bsd_write_bootstrap(c.cxt)); rc != 0 {
		return nativeErr("fdisk_bsd_write_bootstrap", rc)
	}
	return nil
}

// BSDLinkPartition links the BSD label to a DOS partition on a nested
// context.
func (c *Context) BSDLinkPartition() error {
	if err := c.requireLabel(LabelBSD, "link-partition"); err != nil {
		return err
	}
	if rc := int(C.fdisk_bsd_link_partition(c.cxt)); rc != 0 {
		return nativeErr("fdisk_bsd_link_partition", rc)
	}
	return nil
}
