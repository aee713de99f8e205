package fdisk

/*
#include <libfdisk/libfdisk.h>
*/
import "C"

import (
	"unsafe"

	"github.com/fdiskit/fdiskit/internal/gc"
)

// Arena tags. Each tag selects the native release routine invoked at
// Context teardown; sub-objects have no inter-object destruction
// dependencies, so release order does not matter.
const (
	tagPartition gc.Tag = iota
	tagTable
	tagPartType
	tagScript
)

var releasers = map[gc.Tag]gc.ReleaseFunc{
	tagPartition: func(p unsafe.Pointer) {
		C.fdisk_unref_partition((*C.struct_fdisk_partition)(p))
	},
	tagTable: func(p unsafe.Pointer) {
		C.fdisk_unref_table((*C.struct_fdisk_table)(p))
	},
	tagPartType: func(p unsafe.Pointer) {
		C.fdisk_unref_parttype((*C.struct_fdisk_parttype)(p))
	},
	tagScript: func(p unsafe.Pointer) {
		C.fdisk_unref_script((*C.struct_fdisk_script)(p))
	},
}

// ownPartition registers a fresh native partition pointer in the context
// arena and returns it as a borrow scoped to the context.
func (c *Context) ownPartition(pa *C.struct_fdisk_partition) *Partition {
	c.arena.Register(tagPartition, unsafe.Pointer(pa))
	return &Partition{owner: c, pa: pa}
}

// ownTable registers a fresh native table pointer in the context arena.
func (c *Context) ownTable(tb *C.struct_fdisk_table) *Table {
	c.arena.Register(tagTable, unsafe.Pointer(tb))
	return &Table{owner: c, tb: tb}
}

// ownPartType registers a native parttype the context is responsible for
// releasing. Label-owned parttypes are static and must never go through
// the arena; those are wrapped with borrowPartType instead.
func (c *Context) ownPartType(t *C.struct_fdisk_parttype) *PartType {
	c.arena.Register(tagPartType, unsafe.Pointer(t))
	return &PartType{owner: c, t: t}
}

// borrowPartType wraps a label-owned parttype without arena registration.
func (c *Context) borrowPartType(t *C.struct_fdisk_parttype) *PartType {
	return &PartType{owner: c, t: t}
}

// ownScript registers a fresh native script pointer in the context arena.
func (c *Context) ownScript(dp *C.struct_fdisk_script) *Script {
	c.arena.Register(tagScript, unsafe.Pointer(dp))
	return &Script{owner: c, dp: dp}
}

// borrowLabel wraps a context-owned label pointer. Labels are owned by
// the native context itself and released with it, so they bypass the
// arena entirely.
func (c *Context) borrowLabel(lb *C.struct_fdisk_label) *Label {
	return &Label{owner: c, lb: lb}
}
