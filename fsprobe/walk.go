package fsprobe

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kbukum/seqkit/seq"
)

// Entry is one file system object produced by Walk.
type Entry struct {
	Path string
	Info fs.DirEntry
}

// Walk returns a lazy depth-first walk of the tree rooted at root. The
// root itself is not yielded; children of a directory appear in name
// order, each directory before its contents. Directories are listed only
// as the walk reaches them, so consuming a prefix of the sequence reads
// a prefix of the tree.
func Walk(root string) *seq.Sequence[Entry] {
	return seq.FromFunc(func(context.Context) seq.Iterator[Entry] {
		return &walkIter{root: root}
	})
}

// walkFrame is one directory mid-listing on the walk stack.
type walkFrame struct {
	dir     string
	entries []fs.DirEntry
	index   int
}

type walkIter struct {
	root    string
	started bool
	stack   []walkFrame
}

func (it *walkIter) Next(context.Context) (Entry, bool, error) {
	if !it.started {
		it.started = true
		entries, err := os.ReadDir(it.root)
		if err != nil {
			return Entry{}, false, err
		}
		it.stack = []walkFrame{{dir: it.root, entries: entries}}
	}
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.index >= len(top.entries) {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		info := top.entries[top.index]
		top.index++
		path := filepath.Join(top.dir, info.Name())
		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return Entry{}, false, err
			}
			it.stack = append(it.stack, walkFrame{dir: path, entries: entries})
		}
		return Entry{Path: path, Info: info}, true, nil
	}
	return Entry{}, false, nil
}

func (it *walkIter) Close() error {
	it.stack = nil
	return nil
}
