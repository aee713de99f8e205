package fdisk

/*
#include <libfdisk/libfdisk.h>
#include <stdlib.h>

static int sort_table_by_start(struct fdisk_table *tb) {
	return fdisk_table_sort_partitions(tb, fdisk_partition_cmp_start);
}
*/
import "C"

import (
	"io"
	"unsafe"
)

// Partition is a borrow of one native partition object. Partitions
// obtained from a Context are registered in its arena; partitions
// yielded by a Table are kept alive by the table itself.
type Partition struct {
	owner *Context
	pa    *C.struct_fdisk_partition
}

// Number returns the partition number. The second return value is false
// when no number is set (e.g. a template before Add).
func (p *Partition) Number() (uint, bool) {
	if p.owner.closed || C.fdisk_partition_has_partno(p.pa) == 0 {
		return 0, false
	}
	return uint(C.fdisk_partition_get_partno(p.pa)), true
}

// Start returns the first sector of the partition.
func (p *Partition) Start() (uint64, bool) {
	if p.owner.closed || C.fdisk_partition_has_start(p.pa) == 0 {
		return 0, false
	}
	return uint64(C.fdisk_partition_get_start(p.pa)), true
}

// End returns the last sector of the partition.
func (p *Partition) End() (uint64, bool) {
	if p.owner.closed || C.fdisk_partition_has_end(p.pa) == 0 {
		return 0, false
	}
	return uint64(C.fdisk_partition_get_end(p.pa)), true
}

// Size returns the partition size in sectors.
func (p *Partition) Size() (uint64, bool) {
	if p.owner.closed || C.fdisk_partition_has_size(p.pa) == 0 {
		return 0, false
	}
	return uint64(C.fdisk_partition_get_size(p.pa)), true
}

// Name returns the partition name, when the label supports names.
func (p *Partition) Name() string {
	if p.owner.closed {
		return ""
	}
	return goString(C.fdisk_partition_get_name(p.pa))
}

// UUID returns the partition UUID string, when the label supports them.
func (p *Partition) UUID() string {
	if p.owner.closed {
		return ""
	}
	return goString(C.fdisk_partition_get_uuid(p.pa))
}

// Attrs returns the raw attribute string of the partition.
func (p *Partition) Attrs() string {
	if p.owner.closed {
		return ""
	}
	return goString(C.fdisk_partition_get_attrs(p.pa))
}

// Type returns the partition type as a borrow tied to the partition.
func (p *Partition) Type() (*PartType, bool) {
	if p.owner.closed {
		return nil, false
	}
	t := C.fdisk_partition_get_type(p.pa)
	if t == nil {
		return nil, false
	}
	return p.owner.borrowPartType(t), true
}

// IsUsed reports whether the slot holds a real partition.
func (p *Partition) IsUsed() bool {
	return !p.owner.closed && C.fdisk_partition_is_used(p.pa) != 0
}

// IsFreespace reports whether the entry describes a free area.
func (p *Partition) IsFreespace() bool {
	return !p.owner.closed && C.fdisk_partition_is_freespace(p.pa) != 0
}

// IsNested reports whether the partition lives inside another one.
func (p *Partition) IsNested() bool {
	return !p.owner.closed && C.fdisk_partition_is_nested(p.pa) != 0
}

// IsContainer reports whether the partition contains nested partitions
// (e.g. a DOS extended partition).
func (p *Partition) IsContainer() bool {
	return !p.owner.closed && C.fdisk_partition_is_container(p.pa) != 0
}

// IsBootable reports whether the boot flag is set.
func (p *Partition) IsBootable() bool {
	return !p.owner.closed && C.fdisk_partition_is_bootable(p.pa) != 0
}

// IsWholeDisk reports whether the entry covers the whole device (SUN).
func (p *Partition) IsWholeDisk() bool {
	return !p.owner.closed && C.fdisk_partition_is_wholedisk(p.pa) != 0
}

// GetPartition returns the partition in slot partno, registered in the
// context arena.
func (c *Context) GetPartition(partno uint) (*Partition, error) {
	if c.closed {
		return nil, ErrClosed
	}
	var pa *C.struct_fdisk_partition
	if rc := int(C.fdisk_get_partition(c.cxt, C.size_t(partno), &pa)); rc != 0 {
		return nil, nativeErr("fdisk_get_partition", rc)
	}
	return c.ownPartition(pa), nil
}

// SetPartition overwrites slot partno with the settings of pa.
func (c *Context) SetPartition(partno uint, pa *Partition) error {
	if c.closed {
		return ErrClosed
	}
	if rc := int(C.fdisk_set_partition(c.cxt, C.size_t(partno), pa.pa)); rc != 0 {
		return nativeErr("fdisk_set_partition", rc)
	}
	return nil
}

// DeletePartition removes the partition in slot partno.
func (c *Context) DeletePartition(partno uint) error {
	if c.closed {
		return ErrClosed
	}
	if rc := int(C.fdisk_delete_partition(c.cxt, C.size_t(partno))); rc != 0 {
		return nativeErr("fdisk_delete_partition", rc)
	}
	return nil
}

// DeleteAllPartitions removes every partition from the table.
func (c *Context) DeleteAllPartitions() error {
	if c.closed {
		return ErrClosed
	}
	if rc := int(C.fdisk_delete_all_partitions(c.cxt)); rc != 0 {
		return nativeErr("fdisk_delete_all_partitions", rc)
	}
	return nil
}

// WipePartition controls signature wiping for the area of slot partno.
func (c *Context) WipePartition(partno uint, enable bool) error {
	if c.closed {
		return ErrClosed
	}
	if rc := int(C.fdisk_wipe_partition(c.cxt, C.size_t(partno), cbool(enable))); rc != 0 {
		return nativeErr("fdisk_wipe_partition", rc)
	}
	return nil
}

// MaxPartitions returns the number of partition slots the current label
// supports.
func (c *Context) MaxPartitions() (uint, error) {
	if c.closed {
		return 0, ErrClosed
	}
	return uint(C.fdisk_get_npartitions(c.cxt)), nil
}

// IsPartitionUsed reports whether slot partno holds a partition.
func (c *Context) IsPartitionUsed(partno uint) bool {
	return !c.closed && C.fdisk_is_partition_used(c.cxt, C.size_t(partno)) != 0
}

// ToggleFlag toggles a label-specific partition flag on slot partno.
func (c *Context) ToggleFlag(partno uint, flag PartFlag) error {
	if c.closed {
		return ErrClosed
	}
	if rc := int(C.fdisk_toggle_partition_flag(c.cxt, C.size_t(partno), C.ulong(flag))); rc != 0 {
		return nativeErr("fdisk_toggle_partition_flag", rc)
	}
	return nil
}

// PartitionToString renders one field of a partition the way the fdisk
// listing would print it.
func (c *Context) PartitionToString(p *Partition, id FieldID) (string, error) {
	if c.closed {
		return "", ErrClosed
	}
	var s *C.char
	if rc := int(C.fdisk_partition_to_string(p.pa, c.cxt, C.int(id), &s)); rc != 0 {
		return "", nativeErr("fdisk_partition_to_string", rc)
	}
	defer C.free(unsafe.Pointer(s))
	return goString(s), nil
}

// Table is a snapshot of partitions or free areas, registered in the
// context arena.
type Table struct {
	owner *Context
	tb    *C.struct_fdisk_table
}

// Partitions returns a snapshot table of all partitions.
func (c *Context) Partitions() (*Table, error) {
	if c.closed {
		return nil, ErrClosed
	}
	var tb *C.struct_fdisk_table
	if rc := int(C.fdisk_get_partitions(c.cxt, &tb)); rc != 0 {
		return nil, nativeErr("fdisk_get_partitions", rc)
	}
	return c.ownTable(tb), nil
}

// Freespaces returns a snapshot table of the free areas on the device.
func (c *Context) Freespaces() (*Table, error) {
	if c.closed {
		return nil, ErrClosed
	}
	var tb *C.struct_fdisk_table
	if rc := int(C.fdisk_get_freespaces(c.cxt, &tb)); rc != 0 {
		return nil, nativeErr("fdisk_get_freespaces", rc)
	}
	return c.ownTable(tb), nil
}

// Len returns the number of entries in the table.
func (t *Table) Len() (int, error) {
	if t.owner.closed {
		return 0, ErrClosed
	}
	return int(C.fdisk_table_get_nents(t.tb)), nil
}

// IsEmpty reports whether the table has no entries.
func (t *Table) IsEmpty() bool {
	return t.owner.closed || C.fdisk_table_is_empty(t.tb) != 0
}

// Get returns the n-th entry of the table as a borrow kept alive by the
// table.
func (t *Table) Get(n int) (*Partition, error) {
	if t.owner.closed {
		return nil, ErrClosed
	}
	pa := C.fdisk_table_get_partition(t.tb, C.size_t(n))
	if pa == nil {
		return nil, ErrIndexOutOfBounds
	}
	return &Partition{owner: t.owner, pa: pa}, nil
}

// GetByNumber returns the table entry with the given partition number.
func (t *Table) GetByNumber(partno uint) (*Partition, bool, error) {
	if t.owner.closed {
		return nil, false, ErrClosed
	}
	pa := C.fdisk_table_get_partition_by_partno(t.tb, C.size_t(partno))
	if pa == nil {
		return nil, false, nil
	}
	return &Partition{owner: t.owner, pa: pa}, true, nil
}

// WrongOrder reports whether the partitions are out of disk order.
func (t *Table) WrongOrder() bool {
	return !t.owner.closed && C.fdisk_table_wrong_order(t.tb) != 0
}

// Sort reorders the table entries by start sector.
func (t *Table) Sort() error {
	if t.owner.closed {
		return ErrClosed
	}
	if rc := int(C.sort_table_by_start(t.tb)); rc != 0 {
		return nativeErr("fdisk_table_sort_partitions", rc)
	}
	return nil
}

// PartIter walks the entries of a Table through the iterator bridge.
type PartIter struct {
	table *Table
	it    *Iter
}

// Iterate starts a walk over the table in the given direction. The
// caller must Free the iterator when done.
func (t *Table) Iterate(direction Direction) (*PartIter, error) {
	if t.owner.closed {
		return nil, ErrClosed
	}
	it, err := NewIter(direction)
	if err != nil {
		return nil, err
	}
	return &PartIter{table: t, it: it}, nil
}

// Next yields the next entry, io.EOF at the end of the sequence, or an
// error for any other native failure.
func (pi *PartIter) Next() (*Partition, error) {
	if pi.table.owner.closed {
		return nil, ErrClosed
	}
	var pa *C.struct_fdisk_partition
	rc := int(C.fdisk_table_next_partition(pi.table.tb, pi.it.itr, &pa))
	switch {
	case rc == 0:
		return &Partition{owner: pi.table.owner, pa: pa}, nil
	case rc == 1:
		return nil, io.EOF
	default:
		return nil, nativeErr("fdisk_table_next_partition", rc)
	}
}

// Reset repositions the walk to the first entry, keeping direction.
func (pi *PartIter) Reset() { pi.it.Reset() }

// Free releases the underlying native iterator.
func (pi *PartIter) Free() { pi.it.Free() }

// ApplyTable applies the partitions of tb to the context, replacing the
// in-memory layout.
func (c *Context) ApplyTable(t *Table) error {
	if c.closed {
		return ErrClosed
	}
	if rc := int(C.fdisk_apply_table(c.cxt, t.tb)); rc != 0 {
		return nativeErr("fdisk_apply_table", rc)
	}
	return nil
}

// PartFlag is a label-specific partition flag usable with ToggleFlag.
type PartFlag uint

// Partition flags, mirroring the native constants.
const (
	FlagDOSActive      PartFlag = C.DOS_FLAG_ACTIVE
	FlagGPTRequired    PartFlag = C.GPT_FLAG_REQUIRED
	FlagGPTNoBlock     PartFlag = C.GPT_FLAG_NOBLOCK
	FlagGPTLegacyBoot  PartFlag = C.GPT_FLAG_LEGACYBOOT
	FlagGPTGUIDSpecific PartFlag = C.GPT_FLAG_GUIDSPECIFIC
	FlagSGIBoot        PartFlag = C.SGI_FLAG_BOOT
	FlagSGISwap        PartFlag = C.SGI_FLAG_SWAP
	FlagSunUnmounted   PartFlag = C.SUN_FLAG_UNMNT
	FlagSunReadOnly    PartFlag = C.SUN_FLAG_RONLY
)
