package fdisk

/*
#include <libfdisk/libfdisk.h>
*/
import "C"

import (
	"fmt"
	"io"
)

// LabelKind identifies a partition-table implementation. The integer
// representation round-trips exactly with the native FDISK_DISKLABEL_*
// bit flags.
type LabelKind int

// Known partition-table kinds.
const (
	LabelDOS LabelKind = C.FDISK_DISKLABEL_DOS
	LabelSun LabelKind = C.FDISK_DISKLABEL_SUN
	LabelSGI LabelKind = C.FDISK_DISKLABEL_SGI
	LabelBSD LabelKind = C.FDISK_DISKLABEL_BSD
	LabelGPT LabelKind = C.FDISK_DISKLABEL_GPT
)

func (k LabelKind) String() string {
	switch k {
	case LabelDOS:
		return "dos"
	case LabelSun:
		return "sun"
	case LabelSGI:
		return "sgi"
	case LabelBSD:
		return "bsd"
	case LabelGPT:
		return "gpt"
	default:
		return fmt.Sprintf("label(%d)", int(k))
	}
}

// ParseLabelKind maps a label name onto its kind. Unknown names fail
// rather than silently defaulting.
func ParseLabelKind(name string) (LabelKind, error) {
	switch name {
	case "dos", "mbr":
		return LabelDOS, nil
	case "sun":
		return LabelSun, nil
	case "sgi":
		return LabelSGI, nil
	case "bsd":
		return LabelBSD, nil
	case "gpt":
		return LabelGPT, nil
	default:
		return 0, fmt.Errorf("%w: unknown label kind %q", ErrConversion, name)
	}
}

// labelKindFromNative decodes a native labeltype value by exact match.
func labelKindFromNative(v int) (LabelKind, error) {
	switch k := LabelKind(v); k {
	case LabelDOS, LabelSun, LabelSGI, LabelBSD, LabelGPT:
		return k, nil
	default:
		return 0, fmt.Errorf("%w: unknown native label type %d", ErrConversion, v)
	}
}

// Label is a borrow of a partition-table driver. The underlying pointer
// is owned by the native context and stays valid while the Context is
// open.
type Label struct {
	owner *Context
	lb    *C.struct_fdisk_label
}

// Name returns the label driver name ("dos", "gpt", ...).
func (l *Label) Name() (string, error) {
	if l.owner.closed {
		return "", ErrClosed
	}
	return goString(C.fdisk_label_get_name(l.lb)), nil
}

// Kind returns the label kind.
func (l *Label) Kind() (LabelKind, error) {
	if l.owner.closed {
		return 0, ErrClosed
	}
	return labelKindFromNative(int(C.fdisk_label_get_type(l.lb)))
}

// IsChanged reports whether the in-memory label differs from disk.
func (l *Label) IsChanged() bool {
	return !l.owner.closed && C.fdisk_label_is_changed(l.lb) != 0
}

// SetChanged forces the changed state of the label.
func (l *Label) SetChanged(changed bool) error {
	if l.owner.closed {
		return ErrClosed
	}
	C.fdisk_label_set_changed(l.lb, cbool(changed))
	return nil
}

// RequiresGeometry reports whether the label needs CHS geometry.
func (l *Label) RequiresGeometry() bool {
	return !l.owner.closed && C.fdisk_label_require_geometry(l.lb) != 0
}

// HasLabel reports whether the device currently carries a partition table.
func (c *Context) HasLabel() bool {
	return !c.closed && C.fdisk_has_label(c.cxt) != 0
}

// IsLabelKind reports whether the current partition table is of the
// given kind.
func (c *Context) IsLabelKind(kind LabelKind) bool {
	return !c.closed && C.fdisk_is_labeltype(c.cxt, C.enum_fdisk_labeltype(kind)) != 0
}

// Label returns the label of the current partition table, or ErrNoLabel
// when the device carries none.
func (c *Context) Label() (*Label, error) {
	if c.closed {
		return nil, ErrClosed
	}
	lb := C.fdisk_get_label(c.cxt, nil)
	if lb == nil {
		return nil, ErrNoLabel
	}
	return c.borrowLabel(lb), nil
}

// LabelByName returns the label driver for the given name, whether or
// not it is the current table on the device.
func (c *Context) LabelByName(name string) (*Label, error) {
	if c.closed {
		return nil, ErrClosed
	}
	cname, err := cString(name)
	if err != nil {
		return nil, err
	}
	defer freeCString(cname)

	lb := C.fdisk_get_label(c.cxt, cname)
	if lb == nil {
		return nil, fmt.Errorf("%w: no label driver %q", ErrConversion, name)
	}
	return c.borrowLabel(lb), nil
}

// LabelCount returns the number of label drivers supported by the
// native library.
func (c *Context) LabelCount() (int, error) {
	if c.closed {
		return 0, ErrClosed
	}
	return int(C.fdisk_get_nlabels(c.cxt)), nil
}

// LabelIter enumerates the label drivers known to the context.
type LabelIter struct {
	owner *Context
	cur   *C.struct_fdisk_label
}

// Labels returns an iterator over all label drivers. Next yields io.EOF
// at the end of the sequence.
func (c *Context) Labels() (*LabelIter, error) {
	if c.closed {
		return nil, ErrClosed
	}
	return &LabelIter{owner: c}, nil
}

// Next advances to the next label driver. The native "no more elements"
// code yields io.EOF; any other non-zero code is surfaced as an error.
func (it *LabelIter) Next() (*Label, error) {
	if it.owner.closed {
		return nil, ErrClosed
	}
	rc := int(C.fdisk_next_label(it.owner.cxt, &it.cur))
	switch {
	case rc == 0:
		return it.owner.borrowLabel(it.cur), nil
	case rc == 1:
		return nil, io.EOF
	default:
		return nil, nativeErr("fdisk_next_label", rc)
	}
}

// CreateLabel creates a new, empty partition table of the given kind in
// memory. Existing in-memory label state is replaced; earlier borrows of
// it must not be used afterwards.
func (c *Context) CreateLabel(kind LabelKind) error {
	if c.closed {
		return ErrClosed
	}
	cname, err := cString(kind.String())
	if err != nil {
		return err
	}
	defer freeCString(cname)

	if rc := int(C.fdisk_create_disklabel(c.cxt, cname)); rc != 0 {
		return nativeErr("fdisk_create_disklabel", rc)
	}
	return nil
}

// Write writes the in-memory partition table to the device.
func (c *Context) Write() error {
	if c.closed {
		return ErrClosed
	}
	if rc := int(C.fdisk_write_disklabel(c.cxt)); rc != 0 {
		return nativeErr("fdisk_write_disklabel", rc)
	}
	return nil
}

// Verify checks the partition table for consistency. The native driver
// prints findings through the context's output channel.
func (c *Context) Verify() error {
	if c.closed {
		return ErrClosed
	}
	if rc := int(C.fdisk_verify_disklabel(c.cxt)); rc != 0 {
		return nativeErr("fdisk_verify_disklabel", rc)
	}
	return nil
}
