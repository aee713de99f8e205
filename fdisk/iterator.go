package fdisk

/*
#include <libfdisk/libfdisk.h>
*/
import "C"

import "fmt"

// Direction controls which way an Iter walks a table.
type Direction int

// Iteration directions, mirroring the native FDISK_ITER_* constants.
const (
	Forward  Direction = C.FDISK_ITER_FORWARD
	Backward Direction = C.FDISK_ITER_BACKWARD
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Iter is the bidirectional cursor bridge used by every "next element"
// operation. It owns one native iterator handle, released exactly once
// by Free regardless of how iteration ended.
type Iter struct {
	itr   *C.struct_fdisk_iter
	freed bool
}

// NewIter allocates an iterator walking in the given direction.
func NewIter(direction Direction) (*Iter, error) {
	itr := C.fdisk_new_iter(C.int(direction))
	if itr == nil {
		return nil, nativeNull("fdisk_new_iter")
	}
	return &Iter{itr: itr}, nil
}

// Direction reads back the native direction code. A value outside
// {Forward, Backward} means the native library violated its own
// contract; that is an invariant violation, not a recoverable error.
func (it *Iter) Direction() Direction {
	d := Direction(C.fdisk_iter_get_direction(it.itr))
	switch d {
	case Forward, Backward:
		return d
	default:
		panic(fmt.Sprintf("fdisk: native iterator direction out of range: %d", int(d)))
	}
}

// Reset repositions the iterator to the first element, preserving the
// current direction. It cannot fail.
func (it *Iter) Reset() {
	C.fdisk_reset_iter(it.itr, -1)
}

// ResetForward repositions to the first element walking forward.
func (it *Iter) ResetForward() {
	C.fdisk_reset_iter(it.itr, C.FDISK_ITER_FORWARD)
}

// ResetBackward repositions to the first element walking backward.
func (it *Iter) ResetBackward() {
	C.fdisk_reset_iter(it.itr, C.FDISK_ITER_BACKWARD)
}

// Free releases the native iterator handle. Safe to call more than once.
func (it *Iter) Free() {
	if it.freed {
		return
	}
	it.freed = true
	C.fdisk_free_iter(it.itr)
	it.itr = nil
}
