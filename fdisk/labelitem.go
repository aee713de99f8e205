package fdisk

/*
#include <libfdisk/libfdisk.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// HeaderItem identifies one entry of a partition-table header.
//
// The native library reuses the same small integers for the
// label-specific item enums: BSD, GPT, SGI and SUN items all start at
// the end of the generic range and collide at the raw-integer level.
// To keep the Go enum discriminants unique, each family gets its own
// additive offset block (BSD +100, GPT +200, SGI +300, SUN +400);
// native() subtracts the offset again. A family added to the native
// library must take a fresh, non-overlapping hundred-block. This scheme
// is a convention of this wrapper, not a native contract.
type HeaderItem int

// Generic header items, valid for every label kind. These mirror the
// native values directly.
const (
	HeaderItemID HeaderItem = iota
	HeaderItemFirstLBA
	HeaderItemLastLBA
	HeaderItemAltLBA
)

const (
	bsdItemBase HeaderItem = 100
	gptItemBase HeaderItem = 200
	sgiItemBase HeaderItem = 300
	sunItemBase HeaderItem = 400
)

// BSD disklabel header items.
const (
	HeaderItemBSDType HeaderItem = bsdItemBase + iota
	HeaderItemBSDDisk
	HeaderItemBSDPackname
	HeaderItemBSDFlags
	HeaderItemBSDSecSize
	HeaderItemBSDNTracks
	HeaderItemBSDSecPerCyl
	HeaderItemBSDCylinders
	HeaderItemBSDRPM
	HeaderItemBSDInterleave
	HeaderItemBSDTrackSkew
	HeaderItemBSDCylinderSkew
	HeaderItemBSDHeadSwitch
	HeaderItemBSDTrkSeek
)

// GPT header items.
const (
	HeaderItemGPTID HeaderItem = gptItemBase + iota
	HeaderItemGPTFirstLBA
	HeaderItemGPTLastLBA
	HeaderItemGPTAltLBA
	HeaderItemGPTEntriesLBA
	HeaderItemGPTEntriesAlloc
)

// SGI header items.
const (
	HeaderItemSGIPCylCount HeaderItem = sgiItemBase + iota
	HeaderItemSGISpareCyl
	HeaderItemSGIILFact
	HeaderItemSGIBootfile
)

// SUN header items.
const (
	HeaderItemSunLabelID HeaderItem = sunItemBase + iota
	HeaderItemSunVTOC
	HeaderItemSunRPM
	HeaderItemSunACyl
	HeaderItemSunPCyl
	HeaderItemSunAPC
	HeaderItemSunInterleave
)

// family returns the offset block the item belongs to (0 for generic).
func (h HeaderItem) family() HeaderItem {
	switch {
	case h >= sunItemBase:
		return sunItemBase
	case h >= sgiItemBase:
		return sgiItemBase
	case h >= gptItemBase:
		return gptItemBase
	case h >= bsdItemBase:
		return bsdItemBase
	default:
		return 0
	}
}

// native converts the item back to the raw native constant, subtracting
// the family offset.
func (h HeaderItem) native() C.int {
	switch h.family() {
	case bsdItemBase:
		return C.int(C.BSD_LABELITEM_TYPE) + C.int(h-HeaderItemBSDType)
	case gptItemBase:
		return C.int(C.GPT_LABELITEM_ID) + C.int(h-HeaderItemGPTID)
	case sgiItemBase:
		return C.int(C.SGI_LABELITEM_PCYLCOUNT) + C.int(h-HeaderItemSGIPCylCount)
	case sunItemBase:
		return C.int(C.SUN_LABELITEM_LABELID) + C.int(h-HeaderItemSunLabelID)
	default:
		return C.int(h)
	}
}

// headerItemFromNative decodes a raw native item id. The raw value alone
// is ambiguous across families, so the label kind picks the offset.
func headerItemFromNative(kind LabelKind, raw int) (HeaderItem, error) {
	if raw >= 0 && raw < int(C.BSD_LABELITEM_TYPE) {
		if raw > int(HeaderItemAltLBA) {
			return 0, fmt.Errorf("%w: unknown generic header item %d", ErrConversion, raw)
		}
		return HeaderItem(raw), nil
	}
	rel := HeaderItem(raw - int(C.BSD_LABELITEM_TYPE))
	switch kind {
	case LabelBSD:
		if rel > HeaderItemBSDTrkSeek-bsdItemBase {
			return 0, fmt.Errorf("%w: unknown bsd header item %d", ErrConversion, raw)
		}
		return bsdItemBase + rel, nil
	case LabelGPT:
		if rel > HeaderItemGPTEntriesAlloc-gptItemBase {
			return 0, fmt.Errorf("%w: unknown gpt header item %d", ErrConversion, raw)
		}
		return gptItemBase + rel, nil
	case LabelSGI:
		if rel > HeaderItemSGIBootfile-sgiItemBase {
			return 0, fmt.Errorf("%w: unknown sgi header item %d", ErrConversion, raw)
		}
		return sgiItemBase + rel, nil
	case LabelSun:
		if rel > HeaderItemSunInterleave-sunItemBase {
			return 0, fmt.Errorf("%w: unknown sun header item %d", ErrConversion, raw)
		}
		return sunItemBase + rel, nil
	default:
		return 0, fmt.Errorf("%w: label %s has no header item %d", ErrConversion, kind, raw)
	}
}

// nativeValue exposes the raw constant for table-driven tests.
func nativeValue(h HeaderItem) int { return int(h.native()) }

// HeaderValue is the decoded value of one header item: either a string
// or a number, never both.
type HeaderValue struct {
	Name     string
	str      string
	num      uint64
	isString bool
}

// Str returns the string payload, when the item is string-valued.
func (v HeaderValue) Str() (string, bool) { return v.str, v.isString }

// Num returns the numeric payload, when the item is number-valued.
func (v HeaderValue) Num() (uint64, bool) { return v.num, !v.isString }

// HeaderItem reads one header entry of the current partition table.
// The second return value is false when the current label does not
// support the item.
func (c *Context) HeaderItem(item HeaderItem) (HeaderValue, bool, error) {
	if c.closed {
		return HeaderValue{}, false, ErrClosed
	}
	li := C.fdisk_new_labelitem()
	if li == nil {
		return HeaderValue{}, false, nativeNull("fdisk_new_labelitem")
	}
	defer C.fdisk_unref_labelitem(li)

	rc := int(C.fdisk_get_disklabel_item(c.cxt, item.native(), li))
	switch {
	case rc < 0:
		return HeaderValue{}, false, nativeErr("fdisk_get_disklabel_item", rc)
	case rc > 0:
		// Item not supported by the current label.
		return HeaderValue{}, false, nil
	}

	v := HeaderValue{Name: goString(C.fdisk_labelitem_get_name(li))}
	if C.fdisk_labelitem_is_string(li) != 0 {
		var s *C.char
		if rc := int(C.fdisk_labelitem_get_data_string(li, &s)); rc != 0 {
			return HeaderValue{}, false, nativeErr("fdisk_labelitem_get_data_string", rc)
		}
		v.isString = true
		v.str = goString(s)
		return v, true, nil
	}
	var n C.uint64_t
	if rc := int(C.fdisk_labelitem_get_data_u64(li, &n)); rc != 0 {
		return HeaderValue{}, false, nativeErr("fdisk_labelitem_get_data_u64", rc)
	}
	v.num = uint64(n)
	return v, true, nil
}

// DiskLabelID returns the identifier of the current partition table
// (e.g. the GPT disk GUID or the DOS label id).
func (c *Context) DiskLabelID() (string, error) {
	if c.closed {
		return "", ErrClosed
	}
	var s *C.char
	if rc := int(C.fdisk_get_disklabel_id(c.cxt, &s)); rc != 0 {
		return "", nativeErr("fdisk_get_disklabel_id", rc)
	}
	defer C.free(unsafe.Pointer(s))
	return goString(s), nil
}
