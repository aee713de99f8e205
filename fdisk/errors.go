package fdisk

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

var (
	// ErrCreation indicates the native library failed to allocate an object.
	ErrCreation = errors.New("fdisk: native allocation failed")

	// ErrClosed indicates an operation on a closed context or a borrow that
	// outlived its context.
	ErrClosed = errors.New("fdisk: context is closed")

	// ErrConversion indicates a value could not be interpreted.
	ErrConversion = errors.New("fdisk: conversion failed")

	// ErrCString indicates a string contained an embedded NUL byte and
	// cannot cross the native boundary.
	ErrCString = errors.New("fdisk: string contains embedded NUL")

	// ErrRequired indicates a builder was consumed without a required field.
	ErrRequired = errors.New("fdisk: required builder field not set")

	// ErrMutuallyExclusive indicates a builder was given more than one of a
	// set of mutually exclusive fields.
	ErrMutuallyExclusive = errors.New("fdisk: mutually exclusive builder fields set")

	// ErrConfig indicates the native library rejected a configuration value.
	ErrConfig = errors.New("fdisk: configuration rejected")

	// ErrIndexOutOfBounds indicates a partition or field index beyond the
	// valid range.
	ErrIndexOutOfBounds = errors.New("fdisk: index out of bounds")

	// ErrDialogsDisabled indicates an operation needed an interactive dialog
	// while dialogs are suppressed.
	ErrDialogsDisabled = errors.New("fdisk: dialogs are disabled")

	// ErrNoLabel indicates the device carries no partition table.
	ErrNoLabel = errors.New("fdisk: no partition table on device")

	// ErrUnexpected indicates the native library returned an undocumented
	// code.
	ErrUnexpected = errors.New("fdisk: unexpected native return code")
)

// NativeError describes a native call that returned a failure code. The
// code is never surfaced raw to callers: negative codes unwrap to the
// corresponding unix.Errno, so errors.Is(err, unix.ENOMEM) and friends
// work across the boundary.
type NativeError struct {
	// Op is the name of the failing native call, e.g. "fdisk_add_partition".
	Op string
	// Code is the raw return value of the call.
	Code int
}

func (e *NativeError) Error() string {
	return fmt.Sprintf("fdisk: %s failed: rc=%d", e.Op, e.Code)
}

// Unwrap maps negative return codes onto unix.Errno. Non-negative failure
// codes are undocumented and unwrap to ErrUnexpected.
func (e *NativeError) Unwrap() error {
	if e.Code < 0 {
		return unix.Errno(-e.Code)
	}
	return ErrUnexpected
}

// IsOutOfMemory reports whether err is a native allocation failure.
func IsOutOfMemory(err error) bool {
	return errors.Is(err, unix.ENOMEM) || errors.Is(err, ErrCreation)
}

// IsIoError reports whether err is an underlying I/O failure.
func IsIoError(err error) bool {
	return errors.Is(err, unix.EIO)
}

// nativeErr wraps the return code of a failed native call. Callers pass
// the raw rc; rc == 0 is a programming error here, not success handling.
func nativeErr(op string, rc int) error {
	return &NativeError{Op: op, Code: rc}
}
