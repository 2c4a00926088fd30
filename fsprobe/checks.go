package fsprobe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/kbukum/seqkit/seq"
)

// checkOwnership reports whether file ownership can be reassigned, the
// way restoring another user's files would need. The original owner is
// put back when the change succeeds.
func (p *Prober) checkOwnership(a *Abilities, dir string) error {
	path := filepath.Join(dir, "ownership-check")
	if err := touch(path); err != nil {
		return err
	}
	defer os.Remove(path)

	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		a.Ownership = SupportUnknown
		return nil
	}
	uid, gid := int(st.Uid), int(st.Gid)
	if err := os.Chown(path, uid+1, gid+1); err != nil {
		if errors.Is(err, syscall.EPERM) || errors.Is(err, syscall.EINVAL) {
			p.log.Warn().Str("path", a.Name).Msg("ownership cannot be changed on this file system")
			a.Ownership = SupportOff
			return nil
		}
		return err
	}
	if err := os.Chown(path, uid, gid); err != nil {
		return err
	}
	a.Ownership = SupportOn
	return nil
}

// checkHardlinks creates a link and verifies both names resolve to the
// same file.
func (p *Prober) checkHardlinks(a *Abilities, dir string) error {
	src := filepath.Join(dir, "hardlink-a")
	dst := filepath.Join(dir, "hardlink-b")
	if err := touch(src); err != nil {
		return err
	}
	defer os.Remove(src)

	if err := os.Link(src, dst); err != nil {
		if errors.Is(err, syscall.EOPNOTSUPP) || errors.Is(err, syscall.EPERM) {
			p.log.Warn().Str("path", a.Name).Msg("hard linking not supported on this file system")
			a.Hardlinks = SupportOff
			return nil
		}
		return err
	}
	defer os.Remove(dst)

	si, err := os.Lstat(src)
	if err != nil {
		return err
	}
	di, err := os.Lstat(dst)
	if err != nil {
		return err
	}
	if !os.SameFile(si, di) {
		a.Hardlinks = SupportOff
		return nil
	}
	a.Hardlinks = SupportOn
	return nil
}

// checkFsyncDirs reports whether directories accept fsync(). Any failure
// counts as lack of support rather than an error.
func (p *Prober) checkFsyncDirs(a *Abilities, dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Sync(); err != nil {
		p.log.Debug().Str("path", a.Name).Err(err).Msg("directories are not fsyncable, assuming that is unnecessary")
		a.FsyncDirs = SupportOff
		return nil
	}
	a.FsyncDirs = SupportOn
	return nil
}

// checkDirIncPerms reports whether a regular file can carry a directory's
// full permission set, setuid/setgid/sticky bits included. Increment
// files standing in for directories need exactly that.
func (p *Prober) checkDirIncPerms(a *Abilities, dir string) error {
	path := filepath.Join(dir, "perm-check")
	if err := touch(path); err != nil {
		return err
	}
	defer os.Remove(path)

	full := os.FileMode(0o777) | os.ModeSetuid | os.ModeSetgid | os.ModeSticky
	if err := os.Chmod(path, full); err != nil {
		a.DirIncPerms = SupportOff
		return nil
	}
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if info.Mode()&full == full {
		a.DirIncPerms = SupportOn
	} else {
		a.DirIncPerms = SupportOff
	}
	return nil
}

// checkResourceForksReadWrite probes for Mac OS X style resource forks by
// round-tripping data through the file/rsrc namespace of a fresh file.
func (p *Prober) checkResourceForksReadWrite(a *Abilities, dir string) error {
	path := filepath.Join(dir, "fork-check")
	if err := touch(path); err != nil {
		return err
	}
	defer os.Remove(path)

	payload := []byte("resource fork probe payload")
	fork := filepath.Join(path, "rsrc")
	if err := os.WriteFile(fork, payload, 0o600); err != nil {
		a.ResourceForks = SupportOff
		return nil
	}
	back, err := os.ReadFile(fork)
	if err != nil || !bytes.Equal(back, payload) {
		a.ResourceForks = SupportOff
		return nil
	}
	a.ResourceForks = SupportOn
	return nil
}

// checkResourceForksReadOnly finds the first regular file under root and
// tries reading its file/rsrc namespace. With no regular file to test,
// support is reported off.
func (p *Prober) checkResourceForksReadOnly(ctx context.Context, a *Abilities, root string) error {
	regular := seq.Filter(Walk(root), func(e Entry) (bool, error) {
		return e.Info.Type().IsRegular(), nil
	})
	it := regular.Iter(ctx)
	defer it.Close()

	entry, ok, err := it.Next(ctx)
	if err != nil {
		return err
	}
	if !ok {
		a.ResourceForks = SupportOff
		return nil
	}
	if _, err := os.ReadFile(filepath.Join(entry.Path, "rsrc")); err != nil {
		a.ResourceForks = SupportOff
		return nil
	}
	a.ResourceForks = SupportOn
	return nil
}

// Quoting patterns for the four case-sensitivity / character-set
// combinations. Each names the character class a quoting layer would
// need to escape on this file system.
const (
	quoteNone             = ""
	quoteNonPortable      = "^A-Za-z0-9_ -."
	quoteUppercase        = "A-Z;"
	quoteUppercaseAndRest = "^a-z0-9_ -."
)

// checkQuoteChars determines which characters file names may not contain,
// by creating names of increasing hostility.
func (p *Prober) checkQuoteChars(a *Abilities, dir string) error {
	if err := p.checkSaneNames(dir); err != nil {
		return err
	}
	sensitive, err := p.caseSensitive(dir)
	if err != nil {
		return err
	}
	unusual := p.supportsUnusualChars(dir)
	switch {
	case sensitive && unusual:
		a.QuoteChars = quoteNone
	case sensitive && !unusual:
		a.QuoteChars = quoteNonPortable
	case !sensitive && unusual:
		a.QuoteChars = quoteUppercase
	default:
		a.QuoteChars = quoteUppercaseAndRest
	}
	if a.QuoteChars != quoteNone {
		p.log.Warn().Str("path", a.Name).Str("pattern", a.QuoteChars).
			Msg("file names will need quoting on this file system")
	}
	return nil
}

// checkSaneNames verifies that ordinary names with digits, dashes, spaces
// and dots can be created at all.
func (p *Prober) checkSaneNames(dir string) error {
	path := filepath.Join(dir, "5-_ a.")
	if err := touch(path); err != nil {
		return fmt.Errorf("file system cannot create ordinary file names: %w", err)
	}
	return os.Remove(path)
}

// caseSensitive creates "A" and checks whether "a" resolves to the same
// file.
func (p *Prober) caseSensitive(dir string) (bool, error) {
	upper := filepath.Join(dir, "A")
	if err := touch(upper); err != nil {
		return false, err
	}
	defer os.Remove(upper)

	_, err := os.Lstat(filepath.Join(dir, "a"))
	if err == nil {
		return false, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	return false, err
}

// supportsUnusualChars tries names portable file systems reject: a colon,
// a backslash, and a byte outside ASCII.
func (p *Prober) supportsUnusualChars(dir string) bool {
	for _, name := range []string{":", "\\", "\xaf"} {
		path := filepath.Join(dir, name)
		if err := touch(path); err != nil {
			return false
		}
		os.Remove(path)
	}
	return true
}

// --- helpers ---

func touch(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	return f.Close()
}
