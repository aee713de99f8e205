package fdisk

/*
#include <libfdisk/libfdisk.h>
*/
import "C"

import "fmt"

// AskKind identifies the kind of dialog the native library would raise.
// Values round-trip exactly with the native FDISK_ASKTYPE_* constants.
type AskKind int

// Dialog kinds.
const (
	AskNone   AskKind = C.FDISK_ASKTYPE_NONE
	AskNumber AskKind = C.FDISK_ASKTYPE_NUMBER
	AskOffset AskKind = C.FDISK_ASKTYPE_OFFSET
	AskWarn   AskKind = C.FDISK_ASKTYPE_WARN
	AskWarnX  AskKind = C.FDISK_ASKTYPE_WARNX
	AskInfo   AskKind = C.FDISK_ASKTYPE_INFO
	AskYesNo  AskKind = C.FDISK_ASKTYPE_YESNO
	AskString AskKind = C.FDISK_ASKTYPE_STRING
	AskMenu   AskKind = C.FDISK_ASKTYPE_MENU
)

func (k AskKind) String() string {
	switch k {
	case AskNone:
		return "none"
	case AskNumber:
		return "number"
	case AskOffset:
		return "offset"
	case AskWarn:
		return "warn"
	case AskWarnX:
		return "warnx"
	case AskInfo:
		return "info"
	case AskYesNo:
		return "yesno"
	case AskString:
		return "string"
	case AskMenu:
		return "menu"
	default:
		return fmt.Sprintf("ask(%d)", int(k))
	}
}

// askKindFromNative decodes a native ask type by exact match.
func askKindFromNative(v int) (AskKind, error) {
	switch k := AskKind(v); k {
	case AskNone, AskNumber, AskOffset, AskWarn, AskWarnX,
		AskInfo, AskYesNo, AskString, AskMenu:
		return k, nil
	default:
		return 0, fmt.Errorf("%w: unknown native ask type %d", ErrConversion, v)
	}
}

// HasDialogs reports whether interactive dialogs are active. Contexts
// built with the default builder settings have dialogs suppressed; any
// operation that would need one fails with ErrDialogsDisabled on the
// native side instead of blocking.
func (c *Context) HasDialogs() bool {
	return !c.closed && C.fdisk_has_dialogs(c.cxt) != 0
}

// DisableDialogs toggles dialog suppression after the context is built.
func (c *Context) DisableDialogs(disable bool) error {
	if c.closed {
		return ErrClosed
	}
	if rc := int(C.fdisk_disable_dialogs(c.cxt, cbool(disable))); rc != 0 {
		return nativeErr("fdisk_disable_dialogs", rc)
	}
	return nil
}
