// Package gc implements the ownership arena that backs a native context.
//
// Every sub-object pointer handed out by the native library is registered
// here, tagged with its concrete kind, and released exactly once when the
// owning context is closed. The arena is append-only: registration order
// carries no meaning and teardown is safe in any order because native
// sub-objects have no inter-object destruction dependencies.
package gc

import (
	"fmt"
	"unsafe"
)

// Tag identifies the concrete kind of a registered native sub-object, so
// teardown can dispatch to the matching release routine.
type Tag uint8

// ReleaseFunc frees one native sub-object. It must be safe to call exactly
// once per registered pointer.
type ReleaseFunc func(unsafe.Pointer)

type entry struct {
	tag Tag
	ptr unsafe.Pointer
}

// Arena tracks native sub-object pointers owned by a single context.
//
// Arena is NOT thread-safe; it shares the single-writer discipline of the
// context that owns it.
type Arena struct {
	releasers map[Tag]ReleaseFunc
	entries   []entry
	closed    bool
}

// New creates an arena with the given tag → release-routine table.
func New(releasers map[Tag]ReleaseFunc) *Arena {
	return &Arena{releasers: releasers}
}

// Register records a native pointer for release at Close. The tag must have
// a release routine in the table; registering on a closed arena is a
// violated ownership invariant and panics.
func (a *Arena) Register(tag Tag, ptr unsafe.Pointer) {
	if a.closed {
		panic("gc: register on closed arena")
	}
	if _, ok := a.releasers[tag]; !ok {
		panic(fmt.Sprintf("gc: no release routine for tag %d", tag))
	}
	if ptr == nil {
		panic("gc: register nil pointer")
	}
	a.entries = append(a.entries, entry{tag: tag, ptr: ptr})
}

// Len returns the number of registered entries.
func (a *Arena) Len() int { return len(a.entries) }

// Close releases every registered pointer exactly once, in registration
// order, and marks the arena closed. Further Close calls are no-ops.
func (a *Arena) Close() {
	if a.closed {
		return
	}
	a.closed = true
	for _, e := range a.entries {
		a.releasers[e.tag](e.ptr)
	}
	a.entries = nil
}

// Closed reports whether the arena has been torn down.
func (a *Arena) Closed() bool { return a.closed }
