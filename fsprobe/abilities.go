package fsprobe

import (
	"fmt"
	"strconv"
	"strings"
)

// Support is the tri-state outcome of one capability check.
type Support int

const (
	// SupportUnknown marks a capability the chosen probe mode could not test.
	SupportUnknown Support = iota
	// SupportOff marks a capability the file system lacks.
	SupportOff
	// SupportOn marks a capability the file system provides.
	SupportOn
)

func (s Support) String() string {
	switch s {
	case SupportOn:
		return "On"
	case SupportOff:
		return "Off"
	default:
		return "N/A"
	}
}

// MarshalText renders the tri-state as its report form, so JSON output
// carries "On"/"Off"/"N/A" instead of enum numbers.
func (s Support) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Abilities is the capability report for one file system location.
// Write-dependent fields stay SupportUnknown after a read-only probe.
type Abilities struct {
	Name     string `json:"name"`
	ReadOnly bool   `json:"read_only"`

	// QuoteChars is the character-class pattern a name-quoting layer
	// would need to escape on this file system, determined only by
	// read-write probes. Empty means no quoting is needed.
	QuoteChars string `json:"quote_chars"`

	Ownership     Support `json:"ownership"`
	Hardlinks     Support `json:"hardlinks"`
	FsyncDirs     Support `json:"fsync_dirs"`
	DirIncPerms   Support `json:"dir_inc_perms"`
	ExtendedAttrs Support `json:"extended_attrs"`
	ACLs          Support `json:"acls"`
	ResourceForks Support `json:"resource_forks"`
}

// String renders the banner report. Read-only probes list only the
// capabilities they actually tested.
func (a *Abilities) String() string {
	const rule = "-----------------------------------------------------------------"
	mode := "read/write"
	if a.ReadOnly {
		mode = "read only"
	}

	var b strings.Builder
	b.WriteString(rule + "\n")
	if a.Name != "" {
		fmt.Fprintf(&b, "Detected abilities for %s (%s) file system:\n", a.Name, mode)
	} else {
		fmt.Fprintf(&b, "Detected abilities for %s file system:\n", mode)
	}

	line := func(desc, val string) {
		fmt.Fprintf(&b, "  %-45s%s\n", desc, val)
	}
	if !a.ReadOnly {
		line("Characters needing quoting", strconv.Quote(a.QuoteChars))
		line("Ownership changing", a.Ownership.String())
		line("Hard linking", a.Hardlinks.String())
		line("fsync() directories", a.FsyncDirs.String())
		line("Directory inc permissions", a.DirIncPerms.String())
	}
	line("Access control lists", a.ACLs.String())
	line("Extended attributes", a.ExtendedAttrs.String())
	line("Mac OS X style resource forks", a.ResourceForks.String())
	b.WriteString(rule)
	return b.String()
}
