package fdisk

/*
#include <libfdisk/libfdisk.h>
*/
import "C"

import (
	"fmt"
	"math"
)

// FieldID identifies one output column of a partition listing. Values
// round-trip exactly with the native FDISK_FIELD_* constants.
type FieldID int

// Known field ids.
const (
	FieldNone      FieldID = C.FDISK_FIELD_NONE
	FieldDevice    FieldID = C.FDISK_FIELD_DEVICE
	FieldStart     FieldID = C.FDISK_FIELD_START
	FieldEnd       FieldID = C.FDISK_FIELD_END
	FieldSectors   FieldID = C.FDISK_FIELD_SECTORS
	FieldCylinders FieldID = C.FDISK_FIELD_CYLINDERS
	FieldSize      FieldID = C.FDISK_FIELD_SIZE
	FieldType      FieldID = C.FDISK_FIELD_TYPE
	FieldTypeID    FieldID = C.FDISK_FIELD_TYPEID
	FieldAttr      FieldID = C.FDISK_FIELD_ATTR
	FieldBoot      FieldID = C.FDISK_FIELD_BOOT
	FieldBSize     FieldID = C.FDISK_FIELD_BSIZE
	FieldCpg       FieldID = C.FDISK_FIELD_CPG
	FieldEndAddr   FieldID = C.FDISK_FIELD_EADDR
	FieldFSize     FieldID = C.FDISK_FIELD_FSIZE
	FieldName      FieldID = C.FDISK_FIELD_NAME
	FieldStartAddr FieldID = C.FDISK_FIELD_SADDR
	FieldUUID      FieldID = C.FDISK_FIELD_UUID
)

// ColWidth models a column width: either a fraction of the terminal
// width or an absolute character count.
type ColWidth struct {
	n       uint
	percent bool
}

// Percentage constructs a relative width in percent.
func Percentage(n uint) ColWidth { return ColWidth{n: n, percent: true} }

// Length constructs an absolute width in characters.
func Length(n uint) ColWidth { return ColWidth{n: n} }

// IsPercentage reports whether the width is relative.
func (w ColWidth) IsPercentage() bool { return w.percent }

// Value returns the percentage or character count.
func (w ColWidth) Value() uint { return w.n }

func (w ColWidth) String() string {
	if w.percent {
		return fmt.Sprintf("%d%%", w.n)
	}
	return fmt.Sprintf("%dch", w.n)
}

// NewColWidth decodes a native width value. Inputs in [0, 1) are
// fractions of the terminal width (rounded up after x100), inputs >= 1
// are absolute lengths (rounded up), negative inputs fail.
func NewColWidth(v float64) (ColWidth, error) {
	switch {
	case v < 0:
		return ColWidth{}, fmt.Errorf("%w: negative column width %v", ErrConversion, v)
	case v < 1:
		return Percentage(uint(math.Ceil(v * 100))), nil
	default:
		return Length(uint(math.Ceil(v))), nil
	}
}

// Field is a borrow of one output-column descriptor owned by a label
// driver.
type Field struct {
	owner *Context
	fl    *C.struct_fdisk_field
}

// Field looks up a column descriptor of the label by id. The second
// return value is false when the label does not use the column.
func (l *Label) Field(id FieldID) (*Field, bool, error) {
	if l.owner.closed {
		return nil, false, ErrClosed
	}
	fl := C.fdisk_label_get_field(l.lb, C.int(id))
	if fl == nil {
		return nil, false, nil
	}
	return &Field{owner: l.owner, fl: fl}, true, nil
}

// FieldByName looks up a column descriptor of the label by name.
func (l *Label) FieldByName(name string) (*Field, bool, error) {
	if l.owner.closed {
		return nil, false, ErrClosed
	}
	cname, err := cString(name)
	if err != nil {
		return nil, false, err
	}
	defer freeCString(cname)

	fl := C.fdisk_label_get_field_by_name(l.lb, cname)
	if fl == nil {
		return nil, false, nil
	}
	return &Field{owner: l.owner, fl: fl}, true, nil
}

// ID returns the field id.
func (f *Field) ID() (FieldID, error) {
	if f.owner.closed {
		return 0, ErrClosed
	}
	return FieldID(C.fdisk_field_get_id(f.fl)), nil
}

// Name returns the column heading.
func (f *Field) Name() (string, error) {
	if f.owner.closed {
		return "", ErrClosed
	}
	return goString(C.fdisk_field_get_name(f.fl)), nil
}

// Width returns the column width preference.
func (f *Field) Width() (ColWidth, error) {
	if f.owner.closed {
		return ColWidth{}, ErrClosed
	}
	return NewColWidth(float64(C.fdisk_field_get_width(f.fl)))
}

// IsNumber reports whether the column holds numeric data.
func (f *Field) IsNumber() bool {
	return !f.owner.closed && C.fdisk_field_is_number(f.fl) != 0
}
