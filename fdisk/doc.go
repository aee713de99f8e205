// Package fdisk provides a memory-safe Go layer over the util-linux
// libfdisk partitioning library.
//
// # Overview
//
// libfdisk exposes a single mutable context handle from which callers
// obtain pointers to sub-objects (partitions, partition-table labels,
// fields, scripts) whose lifetimes are tied to the context. This package
// keeps that pointer graph safe: every sub-object pointer materialized
// from a context is registered in an ownership arena owned by the
// Context, released exactly once when the Context is closed, and exposed
// to callers as a borrow that fails with ErrClosed once the Context is
// gone.
//
// # Key Types
//
//   - Context: a partitioning session bound to one device or image file
//   - ContextBuilder: staged configuration consumed once to open a Context
//   - Label: a borrow of the partition table (DOS, GPT, BSD, SGI, SUN)
//   - Partition / PartitionBuilder: partition borrows and staged creation
//   - PartType / PartTypeBuilder: partition type descriptors
//   - Table: a snapshot of partitions or free space, iterated via Iter
//   - Script: an sfdisk-compatible textual table description
//
// # Opening a Context
//
//	cxt, err := fdisk.NewContextBuilder().
//		Assign("/dev/sdc").
//		ReadWrite().
//		Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cxt.Close()
//
// All partitioning semantics (alignment, CHS/LBA math, type databases,
// script parsing) stay in libfdisk; this package only makes the calling
// convention and ownership rules safe and idiomatic.
//
// Thread safety: a Context and everything borrowed from it are NOT
// thread-safe. Use one Context per goroutine or add external locking.
package fdisk
