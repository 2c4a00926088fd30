// Package fsprobe determines the capabilities of a file system by probing
// it: which permission and naming features it supports, whether extended
// attributes and ACLs work, and which characters a name-quoting layer
// would need to escape.
//
// Two modes exist. ProbeReadOnly answers what can be learned without
// writing: extended attributes, ACLs, and resource forks. ProbeReadWrite
// creates a scratch directory under the probed root and exercises the
// write-dependent checks too: ownership changes, hard links, directory
// fsync, full permission bits, and the quoting character set.
//
// Probing consumes the file system through the seq package's lazy
// sequences — the read-only resource-fork check, for example, walks only
// as much of the tree as finding one regular file requires.
package fsprobe
