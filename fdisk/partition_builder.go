package fdisk

/*
#include <libfdisk/libfdisk.h>
*/
import "C"

import "github.com/google/uuid"

// PartitionBuilder stages a partition template. Every field is optional;
// absence of a value is never an error. Absent number, start and size
// become "use first free number", "use first free starting sector" and
// "use last free sector as end" requests at Build.
type PartitionBuilder struct {
	ptype        *PartType
	sizeExplicit bool
	attrs        string
	hasAttrs     bool
	name         string
	hasName      bool
	uuid         *uuid.UUID
	partno       *uint
	start        *uint64
	size         *uint64
}

// NewPartitionBuilder returns an empty builder.
func NewPartitionBuilder() *PartitionBuilder {
	return &PartitionBuilder{}
}

// Type sets the partition type.
func (b *PartitionBuilder) Type(t *PartType) *PartitionBuilder {
	b.ptype = t
	return b
}

// SizeExplicit asks the label to keep the size exactly as given instead
// of rounding it to the alignment grain.
func (b *PartitionBuilder) SizeExplicit() *PartitionBuilder {
	b.sizeExplicit = true
	return b
}

// Attrs sets the raw attribute bits string (label-specific format).
func (b *PartitionBuilder) Attrs(attrs string) *PartitionBuilder {
	b.attrs = attrs
	b.hasAttrs = true
	return b
}

// Name sets the partition name, on labels that support names.
func (b *PartitionBuilder) Name(name string) *PartitionBuilder {
	b.name = name
	b.hasName = true
	return b
}

// UUID sets the partition UUID, on labels that support them.
func (b *PartitionBuilder) UUID(u uuid.UUID) *PartitionBuilder {
	b.uuid = &u
	return b
}

// Number sets an explicit partition number.
func (b *PartitionBuilder) Number(n uint) *PartitionBuilder {
	b.partno = &n
	return b
}

// StartSector sets an explicit starting sector.
func (b *PartitionBuilder) StartSector(s uint64) *PartitionBuilder {
	b.start = &s
	return b
}

// SizeInSectors sets an explicit size.
func (b *PartitionBuilder) SizeInSectors(s uint64) *PartitionBuilder {
	b.size = &s
	return b
}

// Build allocates the native partition template and applies the staged
// fields, registering the result in the context arena.
//
// The apply order is load-bearing: the size-in-sectors semantics of the
// native library depend on whether "use last free ending sector" was
// toggled first, so type, flags, attrs and name go in before number,
// start and size.
func (b *PartitionBuilder) Build(c *Context) (*Partition, error) {
	if c.closed {
		return nil, ErrClosed
	}

	pa := C.fdisk_new_partition()
	if pa == nil {
		return nil, nativeNull("fdisk_new_partition")
	}
	fail := func(err error) (*Partition, error) {
		C.fdisk_unref_partition(pa)
		return nil, err
	}

	// (1) partition type
	if b.ptype != nil {
		if err := b.ptype.alive(); err != nil {
			return fail(err)
		}
		if rc := int(C.fdisk_partition_set_type(pa, b.ptype.t)); rc != 0 {
			return fail(nativeErr("fdisk_partition_set_type", rc))
		}
	}

	// (2) explicit-size flag
	if b.sizeExplicit {
		if rc := int(C.fdisk_partition_size_explicit(pa, 1)); rc != 0 {
			return fail(nativeErr("fdisk_partition_size_explicit", rc))
		}
	}

	// (3) attribute bits
	if b.hasAttrs {
		cattrs, err := cString(b.attrs)
		if err != nil {
			return fail(err)
		}
		rc := int(C.fdisk_partition_set_attrs(pa, cattrs))
		freeCString(cattrs)
		if rc != 0 {
			return fail(nativeErr("fdisk_partition_set_attrs", rc))
		}
	}

	// (4) name and uuid
	if b.hasName {
		cname, err := cString(b.name)
		if err != nil {
			return fail(err)
		}
		rc := int(C.fdisk_partition_set_name(pa, cname))
		freeCString(cname)
		if rc != 0 {
			return fail(nativeErr("fdisk_partition_set_name", rc))
		}
	}
	if b.uuid != nil {
		cu, err := cString(b.uuid.String())
		if err != nil {
			return fail(err)
		}
		rc := int(C.fdisk_partition_set_uuid(pa, cu))
		freeCString(cu)
		if rc != 0 {
			return fail(nativeErr("fdisk_partition_set_uuid", rc))
		}
	}

	// (5) partition number
	if b.partno != nil {
		if rc := int(C.fdisk_partition_set_partno(pa, C.size_t(*b.partno))); rc != 0 {
			return fail(nativeErr("fdisk_partition_set_partno", rc))
		}
	} else if rc := int(C.fdisk_partition_partno_follow_default(pa, 1)); rc != 0 {
		return fail(nativeErr("fdisk_partition_partno_follow_default", rc))
	}

	// (6) starting sector
	if b.start != nil {
		if rc := int(C.fdisk_partition_set_start(pa, C.fdisk_sector_t(*b.start))); rc != 0 {
			return fail(nativeErr("fdisk_partition_set_start", rc))
		}
	} else if rc := int(C.fdisk_partition_start_follow_default(pa, 1)); rc != 0 {
		return fail(nativeErr("fdisk_partition_start_follow_default", rc))
	}

	// (7) size, after the end-follow toggle
	if b.size != nil {
		if rc := int(C.fdisk_partition_end_follow_default(pa, 0)); rc != 0 {
			return fail(nativeErr("fdisk_partition_end_follow_default", rc))
		}
		if rc := int(C.fdisk_partition_set_size(pa, C.fdisk_sector_t(*b.size))); rc != 0 {
			return fail(nativeErr("fdisk_partition_set_size", rc))
		}
	} else if rc := int(C.fdisk_partition_end_follow_default(pa, 1)); rc != 0 {
		return fail(nativeErr("fdisk_partition_end_follow_default", rc))
	}

	return c.ownPartition(pa), nil
}

// AddPartition adds the template to the partition table and returns the
// number of the created partition.
func (c *Context) AddPartition(p *Partition) (uint, error) {
	if c.closed {
		return 0, ErrClosed
	}
	var partno C.size_t
	if rc := int(C.fdisk_add_partition(c.cxt, p.pa, &partno)); rc != 0 {
		return 0, nativeErr("fdisk_add_partition", rc)
	}
	return uint(partno), nil
}
