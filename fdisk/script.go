package fdisk

/*
#include <libfdisk/libfdisk.h>
#include <stdio.h>
#include <stdlib.h>
*/
import "C"

import "fmt"

// Script is an sfdisk-compatible textual description of a partition
// table. Parsing and composition are delegated to the native library;
// scripts obtained through a Context are registered in its arena.
type Script struct {
	owner *Context
	dp    *C.struct_fdisk_script
}

// NewScript creates an empty script bound to the context.
func (c *Context) NewScript() (*Script, error) {
	if c.closed {
		return nil, ErrClosed
	}
	dp := C.fdisk_new_script(c.cxt)
	if dp == nil {
		return nil, nativeNull("fdisk_new_script")
	}
	return c.ownScript(dp), nil
}

// NewScriptFromFile reads an sfdisk script from path.
func (c *Context) NewScriptFromFile(path string) (*Script, error) {
	if c.closed {
		return nil, ErrClosed
	}
	cpath, err := cString(path)
	if err != nil {
		return nil, err
	}
	defer freeCString(cpath)

	dp := C.fdisk_new_script_from_file(c.cxt, cpath)
	if dp == nil {
		return nil, fmt.Errorf("read script %q: %w", path, ErrCreation)
	}
	return c.ownScript(dp), nil
}

// Compose fills the script from the context's current in-memory
// partition table.
func (s *Script) Compose() error {
	if s.owner.closed {
		return ErrClosed
	}
	if rc := int(C.fdisk_script_read_context(s.dp, nil)); rc != 0 {
		return nativeErr("fdisk_script_read_context", rc)
	}
	return nil
}

// Header returns the value of a script header (e.g. "label").
func (s *Script) Header(name string) (string, bool, error) {
	if s.owner.closed {
		return "", false, ErrClosed
	}
	cname, err := cString(name)
	if err != nil {
		return "", false, err
	}
	defer freeCString(cname)

	v := C.fdisk_script_get_header(s.dp, cname)
	if v == nil {
		return "", false, nil
	}
	return C.GoString(v), true, nil
}

// SetHeader sets or overrides a script header.
func (s *Script) SetHeader(name, value string) error {
	if s.owner.closed {
		return ErrClosed
	}
	cname, err := cString(name)
	if err != nil {
		return err
	}
	defer freeCString(cname)
	cvalue, err := cString(value)
	if err != nil {
		return err
	}
	defer freeCString(cvalue)

	if rc := int(C.fdisk_script_set_header(s.dp, cname, cvalue)); rc != 0 {
		return nativeErr("fdisk_script_set_header", rc)
	}
	return nil
}

// LineCount returns the number of parsed partition lines.
func (s *Script) LineCount() (int, error) {
	if s.owner.closed {
		return 0, ErrClosed
	}
	return int(C.fdisk_script_get_nlines(s.dp)), nil
}

// EnableJSON switches output composition to JSON instead of the sfdisk
// key=value format.
func (s *Script) EnableJSON(enable bool) error {
	if s.owner.closed {
		return ErrClosed
	}
	if rc := int(C.fdisk_script_enable_json(s.dp, cbool(enable))); rc != 0 {
		return nativeErr("fdisk_script_enable_json", rc)
	}
	return nil
}

// WriteFile writes the composed script to path.
func (s *Script) WriteFile(path string) error {
	if s.owner.closed {
		return ErrClosed
	}
	cpath, err := cString(path)
	if err != nil {
		return err
	}
	defer freeCString(cpath)
	cmode := C.CString("w")
	defer freeCString(cmode)

	f := C.fopen(cpath, cmode)
	if f == nil {
		return fmt.Errorf("write script %q: %w", path, ErrCreation)
	}
	rc := int(C.fdisk_script_write_file(s.dp, f))
	C.fclose(f)
	if rc != 0 {
		return nativeErr("fdisk_script_write_file", rc)
	}
	return nil
}

// SetScript attaches the script to the context so that subsequent
// operations (e.g. Apply) use it.
func (c *Context) SetScript(s *Script) error {
	if c.closed {
		return ErrClosed
	}
	var dp *C.struct_fdisk_script
	if s != nil {
		dp = s.dp
	}
	if rc := int(C.fdisk_set_script(c.cxt, dp)); rc != 0 {
		return nativeErr("fdisk_set_script", rc)
	}
	return nil
}

// GetScript returns the script currently attached to the context. The
// second return value is false when none is set. The returned script is
// a borrow owned by the context.
func (c *Context) GetScript() (*Script, bool, error) {
	if c.closed {
		return nil, false, ErrClosed
	}
	dp := C.fdisk_get_script(c.cxt)
	if dp == nil {
		return nil, false, nil
	}
	return &Script{owner: c, dp: dp}, true, nil
}

// ApplyScript overrides the in-memory partition table with the script's
// content.
func (c *Context) ApplyScript(s *Script) error {
	if c.closed {
		return ErrClosed
	}
	if rc := int(C.fdisk_apply_script(c.cxt, s.dp)); rc != 0 {
		return nativeErr("fdisk_apply_script", rc)
	}
	return nil
}

// ApplyScriptHeaders applies only the script headers (e.g. creates the
// label named by the script) without touching partition lines.
func (c *Context) ApplyScriptHeaders(s *Script) error {
	if c.closed {
		return ErrClosed
	}
	if rc := int(C.fdisk_apply_script_headers(c.cxt, s.dp)); rc != 0 {
		return nativeErr("fdisk_apply_script_headers", rc)
	}
	return nil
}
