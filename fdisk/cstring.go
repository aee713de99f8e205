package fdisk

/*
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"strings"
	"unsafe"
)

// cString copies s into native memory after checking for embedded NUL
// bytes. The caller owns the returned pointer and must free it with
// freeCString.
func cString(s string) (*C.char, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, fmt.Errorf("%w: %q", ErrCString, s)
	}
	return C.CString(s), nil
}

func freeCString(p *C.char) {
	if p != nil {
		C.free(unsafe.Pointer(p))
	}
}

// goString converts a native string, mapping NULL to the empty string.
func goString(p *C.char) string {
	if p == nil {
		return ""
	}
	return C.GoString(p)
}
