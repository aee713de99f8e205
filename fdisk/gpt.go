package fdisk

/*
#include <libfdisk/libfdisk.h>
*/
import "C"

import (
	"github.com/google/uuid"
)

// GPT-specific operations, inherent methods of Context (see dos.go for
// the capability-sealing rationale).

// GPTIsHybrid reports whether the GPT coexists with a hybrid MBR.
func (c *Context) GPTIsHybrid() bool {
	return !c.closed && C.fdisk_gpt_is_hybrid(c.cxt) != 0
}

// GPTPartitionAttrs returns the raw 64-bit attribute field of slot
// partno.
func (c *Context) GPTPartitionAttrs(partno uint) (uint64, error) {
	if err := c.requireLabel(LabelGPT, "partition-attrs"); err != nil {
		return 0, err
	}
	var attrs C.uint64_t
	if rc := int(C.fdisk_gpt_get_partition_attrs(c.cxt, C.size_t(partno), &attrs)); rc != 0 {
		return 0, nativeErr("fdisk_gpt_get_partition_attrs", rc)
	}
	return uint64(attrs), nil
}

// GPTSetPartitionAttrs overwrites the raw 64-bit attribute field of
// slot partno.
func (c *Context) GPTSetPartitionAttrs(partno uint, attrs uint64) error {
	if err := c.requireLabel(LabelGPT, "partition-attrs"); err != nil {
		return err
	}
	if rc := int(C.fdisk_gpt_set_partition_attrs(c.cxt, C.size_t(partno), C.uint64_t(attrs))); rc != 0 {
		return nativeErr("fdisk_gpt_set_partition_attrs", rc)
	}
	return nil
}

// GPTSetEntryCount resizes the GPT entries array.
func (c *Context) GPTSetEntryCount(n uint32) error {
	if err := c.requireLabel(LabelGPT, "set-entry-count"); err != nil {
		return err
	}
	if rc := int(C.fdisk_gpt_set_npartitions(c.cxt, C.uint32_t(n))); rc != 0 {
		return nativeErr("fdisk_gpt_set_npartitions", rc)
	}
	return nil
}

// GPTSetPartitionTypeUUID sets the type GUID of slot partno.
func (c *Context) GPTSetPartitionTypeUUID(partno uint, typeGUID uuid.UUID) error {
	if err := c.requireLabel(LabelGPT, "set-type-uuid"); err != nil {
		return err
	}
	lb, err := c.Label()
	if err != nil {
		return err
	}
	t, ok, err := lb.PartTypeFromString(typeGUID.String())
	if err != nil {
		return err
	}
	if !ok {
		// Not in the database; carry the GUID verbatim.
		built, err := NewPartTypeBuilder().GUID(typeGUID).Build()
		if err != nil {
			return err
		}
		defer built.Close()
		return c.setPartitionType(partno, built)
	}
	return c.setPartitionType(partno, t)
}

// setPartitionType rewrites only the type of an existing partition.
func (c *Context) setPartitionType(partno uint, t *PartType) error {
	pa := C.fdisk_new_partition()
	if pa == nil {
		return nativeNull("fdisk_new_partition")
	}
	defer C.fdisk_unref_partition(pa)

	if rc := int(C.fdisk_partition_set_type(pa, t.t)); rc != 0 {
		return nativeErr("fdisk_partition_set_type", rc)
	}
	if rc := int(C.fdisk_set_partition(c.cxt, C.size_t(partno), pa)); rc != 0 {
		return nativeErr("fdisk_set_partition", rc)
	}
	return nil
}

// GPTDisableRelocation keeps the backup header where it is instead of
// moving it to the end of the device.
func (l *Label) GPTDisableRelocation(disable bool) error {
	if l.owner.closed {
		return ErrClosed
	}
	C.fdisk_gpt_disable_relocation(l.lb, cbool(disable))
	return nil
}

// GPTEnableMinimize makes the driver use the smallest possible entries
// array when writing the label.
func (l *Label) GPTEnableMinimize(enable bool) error {
	if l.owner.closed {
		return ErrClosed
	}
	C.fdisk_gpt_enable_minimize(l.lb, cbool(enable))
	return nil
}
