// Package navtree keeps an in-memory, lazily populated mirror of a directory subtree.
package navtree

import (
	"path/filepath"
	"strings"

	"github.com/glassexplorer/glassexplorer/pkg/files"
)

// Node is a displayed filesystem entry. Children stay empty until the node is expanded
// and are replaced wholesale on every expansion.
type Node struct {
	Entry    files.DirEntry
	Children []*Node
	Expanded bool
	label    string
}

func newNode(entry files.DirEntry) *Node {
	return &Node{Entry: entry}
}

func newRootNode(dirPath string) *Node {
	name := filepath.Base(dirPath)
	var entry files.DirEntry
	if name == dirPath || strings.ContainsRune(name, filepath.Separator) {
		// Filesystem roots have no base name of their own.
		entry = files.NewDirEntry(dirPath, "", true)
	} else {
		entry = files.NewDirEntry(filepath.Dir(dirPath), name, true)
	}
	n := newNode(entry)
	n.label = dirPath
	return n
}

func (n *Node) Path() string {
	return n.Entry.FullPath()
}

func (n *Node) IsDir() bool {
	return n.Entry.IsDir()
}

// Label is the text shown for the node: the full path for a root,
// the name with a trailing slash for directories, the bare name otherwise.
func (n *Node) Label() string {
	if n.label != "" {
		return n.label
	}
	if n.Entry.IsDir() {
		return n.Entry.Name() + "/"
	}
	return n.Entry.Name()
}

// ChildLabels returns labels of the listed children in display order.
func (n *Node) ChildLabels() []string {
	labels := make([]string, len(n.Children))
	for i, child := range n.Children {
		labels[i] = child.Label()
	}
	return labels
}

// Tree is the currently displayed directory tree.
type Tree struct {
	Root *Node
}

// Find returns the displayed node with the given full path, or nil.
func (t *Tree) Find(nodePath string) *Node {
	if t == nil || t.Root == nil {
		return nil
	}
	nodePath = filepath.Clean(nodePath)
	return findNode(t.Root, nodePath)
}

func findNode(n *Node, nodePath string) *Node {
	if n.Path() == nodePath {
		return n
	}
	for _, child := range n.Children {
		if found := findNode(child, nodePath); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits displayed nodes depth first, children in order.
func (t *Tree) Walk(visit func(n *Node, depth int)) {
	if t == nil || t.Root == nil {
		return
	}
	walk(t.Root, 0, visit)
}

func walk(n *Node, depth int, visit func(n *Node, depth int)) {
	visit(n, depth)
	for _, child := range n.Children {
		walk(child, depth+1, visit)
	}
}
