package fdisk

/*
#include <libfdisk/libfdisk.h>
*/
import "C"

import (
	"fmt"

	"github.com/google/uuid"
)

// PartType describes a partition type: a one-byte code on DOS-style
// labels, a type GUID on GPT, or an unknown type carried verbatim.
//
// A PartType is either owned (created by PartTypeBuilder, released by
// Close), arena-owned (parsed through a Context and released with it),
// or a borrow of a static label table entry (never released).
type PartType struct {
	owner *Context
	t     *C.struct_fdisk_parttype
	owned bool
	freed bool
}

func (t *PartType) alive() error {
	if t.freed || (t.owner != nil && t.owner.closed) {
		return ErrClosed
	}
	return nil
}

// Close releases a builder-owned PartType. It is a no-op for borrows and
// arena-owned types, and idempotent.
func (t *PartType) Close() {
	if !t.owned || t.freed {
		return
	}
	t.freed = true
	C.fdisk_unref_parttype(t.t)
	t.t = nil
}

// Code returns the DOS-style type code.
func (t *PartType) Code() (uint, error) {
	if err := t.alive(); err != nil {
		return 0, err
	}
	return uint(C.fdisk_parttype_get_code(t.t)), nil
}

// TypeString returns the GUID or other string form of the type.
func (t *PartType) TypeString() (string, error) {
	if err := t.alive(); err != nil {
		return "", err
	}
	return goString(C.fdisk_parttype_get_string(t.t)), nil
}

// Name returns the human-readable type name.
func (t *PartType) Name() (string, error) {
	if err := t.alive(); err != nil {
		return "", err
	}
	return goString(C.fdisk_parttype_get_name(t.t)), nil
}

// IsUnknown reports whether the type is outside the label's database.
func (t *PartType) IsUnknown() bool {
	return t.alive() == nil && C.fdisk_parttype_is_unknown(t.t) != 0
}

// PartTypeBuilder stages creation of a PartType. Exactly one of Code,
// GUID or Unknown must be chosen; Name may be set regardless of the
// selector. The builder performs no native call before Build.
type PartTypeBuilder struct {
	code        *uint
	guid        *uuid.UUID
	guidErr     error
	unknownCode *uint
	unknownStr  string
	name        string
	hasName     bool
}

// NewPartTypeBuilder returns an empty builder.
func NewPartTypeBuilder() *PartTypeBuilder {
	return &PartTypeBuilder{}
}

// Code selects a DOS-style one-byte type code.
func (b *PartTypeBuilder) Code(code uint) *PartTypeBuilder {
	b.code = &code
	return b
}

// GUID selects a GPT type GUID.
func (b *PartTypeBuilder) GUID(g uuid.UUID) *PartTypeBuilder {
	b.guid = &g
	return b
}

// GUIDString selects a GPT type GUID given in string form. Invalid
// strings surface as a Conversion error at Build.
func (b *PartTypeBuilder) GUIDString(s string) *PartTypeBuilder {
	g, err := uuid.Parse(s)
	if err != nil {
		b.guidErr = fmt.Errorf("%w: type guid %q: %v", ErrConversion, s, err)
		return b
	}
	b.guid = &g
	return b
}

// Unknown selects an out-of-database type with a raw numeric code and
// its display string.
func (b *PartTypeBuilder) Unknown(code uint, display string) *PartTypeBuilder {
	b.unknownCode = &code
	b.unknownStr = display
	return b
}

// Name sets the human-readable name applied after the selector.
func (b *PartTypeBuilder) Name(name string) *PartTypeBuilder {
	b.name = name
	b.hasName = true
	return b
}

// Build validates the staged fields and creates the PartType. Zero
// selectors fail with ErrRequired, more than one with
// ErrMutuallyExclusive; validation happens before any native call.
func (b *PartTypeBuilder) Build() (*PartType, error) {
	if b.guidErr != nil {
		return nil, b.guidErr
	}

	selected := 0
	if b.code != nil {
		selected++
	}
	if b.guid != nil {
		selected++
	}
	if b.unknownCode != nil {
		selected++
	}
	switch {
	case selected == 0:
		return nil, fmt.Errorf("%w: one of code, guid or unknown type", ErrRequired)
	case selected > 1:
		return nil, fmt.Errorf("%w: code, guid and unknown type", ErrMutuallyExclusive)
	}

	var t *C.struct_fdisk_parttype
	switch {
	case b.unknownCode != nil:
		cstr, err := cString(b.unknownStr)
		if err != nil {
			return nil, err
		}
		defer freeCString(cstr)
		t = C.fdisk_new_unknown_parttype(C.uint(*b.unknownCode), cstr)
		if t == nil {
			return nil, nativeNull("fdisk_new_unknown_parttype")
		}
	case b.code != nil:
		t = C.fdisk_new_parttype()
		if t == nil {
			return nil, nativeNull("fdisk_new_parttype")
		}
		if rc := int(C.fdisk_parttype_set_code(t, C.int(*b.code))); rc != 0 {
			C.fdisk_unref_parttype(t)
			return nil, nativeErr("fdisk_parttype_set_code", rc)
		}
	default:
		t = C.fdisk_new_parttype()
		if t == nil {
			return nil, nativeNull("fdisk_new_parttype")
		}
		cstr, err := cString(b.guid.String())
		if err != nil {
			C.fdisk_unref_parttype(t)
			return nil, err
		}
		rc := int(C.fdisk_parttype_set_typestr(t, cstr))
		freeCString(cstr)
		if rc != 0 {
			C.fdisk_unref_parttype(t)
			return nil, nativeErr("fdisk_parttype_set_typestr", rc)
		}
	}

	if b.hasName {
		cname, err := cString(b.name)
		if err != nil {
			C.fdisk_unref_parttype(t)
			return nil, err
		}
		rc := int(C.fdisk_parttype_set_name(t, cname))
		freeCString(cname)
		if rc != 0 {
			C.fdisk_unref_parttype(t)
			return nil, nativeErr("fdisk_parttype_set_name", rc)
		}
	}

	return &PartType{t: t, owned: true}, nil
}

// PartTypeCount returns the number of types in the label's database.
func (l *Label) PartTypeCount() (int, error) {
	if l.owner.closed {
		return 0, ErrClosed
	}
	return int(C.fdisk_label_get_nparttypes(l.lb)), nil
}

// PartTypeAt returns the n-th type of the label database as a borrow of
// the static table entry.
func (l *Label) PartTypeAt(n int) (*PartType, error) {
	if l.owner.closed {
		return nil, ErrClosed
	}
	t := C.fdisk_label_get_parttype(l.lb, C.size_t(n))
	if t == nil {
		return nil, ErrIndexOutOfBounds
	}
	return l.owner.borrowPartType(t), nil
}

// HasCodeTypes reports whether the label uses one-byte type codes.
func (l *Label) HasCodeTypes() bool {
	return !l.owner.closed && C.fdisk_label_has_code_parttypes(l.lb) != 0
}

// PartTypeFromCode looks a type up in the label database by code.
func (l *Label) PartTypeFromCode(code uint) (*PartType, bool, error) {
	if l.owner.closed {
		return nil, false, ErrClosed
	}
	t := C.fdisk_label_get_parttype_from_code(l.lb, C.uint(code))
	if t == nil {
		return nil, false, nil
	}
	return l.owner.borrowPartType(t), true, nil
}

// PartTypeFromString looks a type up in the label database by its
// string form (e.g. a GPT type GUID).
func (l *Label) PartTypeFromString(s string) (*PartType, bool, error) {
	if l.owner.closed {
		return nil, false, ErrClosed
	}
	cstr, err := cString(s)
	if err != nil {
		return nil, false, err
	}
	defer freeCString(cstr)

	t := C.fdisk_label_get_parttype_from_string(l.lb, cstr)
	if t == nil {
		return nil, false, nil
	}
	return l.owner.borrowPartType(t), true, nil
}

// ParsePartType parses a user-supplied type string through the label
// driver. The result is registered in the context arena.
func (l *Label) ParsePartType(s string) (*PartType, error) {
	if l.owner.closed {
		return nil, ErrClosed
	}
	cstr, err := cString(s)
	if err != nil {
		return nil, err
	}
	defer freeCString(cstr)

	t := C.fdisk_label_parse_parttype(l.lb, cstr)
	if t == nil {
		return nil, fmt.Errorf("%w: partition type %q", ErrConversion, s)
	}
	return l.owner.ownPartType(t), nil
}
