package fsprobe

import (
	"bytes"
	"errors"
	"syscall"

	"github.com/pkg/xattr"
)

// aclAttr is the extended attribute POSIX file systems expose access
// ACLs through.
const aclAttr = "system.posix_acl_access"

// checkExtendedAttrs reports user-namespace extended attribute support.
// In write mode a user.test attribute is round-tripped on path; read-only
// mode only lists.
func (p *Prober) checkExtendedAttrs(a *Abilities, path string, write bool) error {
	if _, err := xattr.LList(path); err != nil {
		if isNotSupported(err) {
			p.log.Warn().Str("path", a.Name).Msg("extended attributes not supported on this file system")
			a.ExtendedAttrs = SupportOff
			return nil
		}
		return err
	}
	if !write {
		a.ExtendedAttrs = SupportOn
		return nil
	}

	payload := []byte("test val")
	if err := xattr.LSet(path, "user.test", payload); err != nil {
		if isNotSupported(err) || errors.Is(err, syscall.EPERM) {
			p.log.Warn().Str("path", a.Name).Msg("extended attributes cannot be written on this file system")
			a.ExtendedAttrs = SupportOff
			return nil
		}
		return err
	}
	back, err := xattr.LGet(path, "user.test")
	if err != nil {
		return err
	}
	if !bytes.Equal(back, payload) {
		a.ExtendedAttrs = SupportOff
		return nil
	}
	a.ExtendedAttrs = SupportOn
	return nil
}

// checkACLs reports POSIX ACL support by reading the access ACL
// attribute. A file without an explicit ACL answers ENOATTR, which still
// proves the file system understands ACLs.
func (p *Prober) checkACLs(a *Abilities, path string) error {
	if _, err := xattr.LGet(path, aclAttr); err != nil {
		if errors.Is(err, xattr.ENOATTR) {
			a.ACLs = SupportOn
			return nil
		}
		if isNotSupported(err) {
			p.log.Warn().Str("path", a.Name).Msg("ACLs appear not to be supported on this file system")
			a.ACLs = SupportOff
			return nil
		}
		return err
	}
	a.ACLs = SupportOn
	return nil
}

// isNotSupported matches the errno file systems answer for attribute
// operations they do not implement.
func isNotSupported(err error) bool {
	return errors.Is(err, syscall.EOPNOTSUPP)
}
