package fdisk

/*
#include <libfdisk/libfdisk.h>
*/
import "C"

// SGI-specific operations, inherent methods of Context (see dos.go).

// SGISetBootfile asks for and sets the SGI boot file. Dialog-driven.
func (c *Context) SGISetBootfile() error {
	if err := c.requireLabel(LabelSGI, "set-bootfile"); err != nil {
		return err
	}
	if !c.HasDialogs() {
		return ErrDialogsDisabled
	}
	if rc := int(C.fdisk_sgi_set_bootfile(c.cxt)); rc != 0 {
		return nativeErr("fdisk_sgi_set_bootfile", rc)
	}
	return nil
}

// SGICreateInfo creates the SGI volume info entry.
func (c *Context) SGICreateInfo() error {
	if err := c.requireLabel(LabelSGI, "create-info"); err != nil {
		return err
	}
	if rc := int(C.fdisk_sgi_create_info(c.cxt)); rc != 0 {
		return nativeErr("fdisk_sgi_create_info", rc)
	}
	return nil
}
