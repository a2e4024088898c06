package navtree

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/glassexplorer/glassexplorer/pkg/files"
	"github.com/glassexplorer/glassexplorer/pkg/fsutils"
)

// Navigator owns the displayed tree and the current path.
// The tree is rebuilt on every refresh, never diffed.
type Navigator struct {
	store       files.Store
	tree        *Tree
	currentPath string
}

func NewNavigator(store files.Store) *Navigator {
	return &Navigator{store: store}
}

func (nav *Navigator) CurrentPath() string {
	return nav.currentPath
}

func (nav *Navigator) Tree() *Tree {
	return nav.tree
}

// Refresh replaces the displayed tree with a fresh root for dirPath
// and lists the root's immediate children only.
// On failure the previous tree and current path are kept.
func (nav *Navigator) Refresh(ctx context.Context, dirPath string) (*Tree, error) {
	dirPath = filepath.Clean(fsutils.ExpandHome(dirPath))
	children, err := nav.store.ReadDir(ctx, dirPath)
	if err != nil {
		return nav.tree, err
	}
	root := newRootNode(dirPath)
	root.Children = newNodes(children)
	root.Expanded = true
	nav.tree = &Tree{Root: root}
	nav.currentPath = dirPath
	return nav.tree, nil
}

// Expand lists the node's immediate children, discarding any earlier listing.
// Expanding a node whose path is not a directory does nothing.
func (nav *Navigator) Expand(ctx context.Context, node *Node) error {
	if node == nil || !node.IsDir() {
		return nil
	}
	children, err := nav.store.ReadDir(ctx, node.Path())
	if err != nil {
		if errors.Is(err, files.ErrNotADirectory) {
			return nil
		}
		node.Children = nil
		node.Expanded = false
		return err
	}
	node.Children = newNodes(children)
	node.Expanded = true
	return nil
}

// Collapse hides the node's children. They are listed again on the next Expand.
func (nav *Navigator) Collapse(node *Node) {
	if node == nil {
		return
	}
	node.Expanded = false
}

// GoUp refreshes the parent of the current path.
// At a root, or when the parent is gone, the current tree is returned unchanged.
func (nav *Navigator) GoUp(ctx context.Context) (*Tree, error) {
	if nav.currentPath == "" {
		return nav.tree, nil
	}
	parent := fsutils.ParentDir(nav.currentPath)
	if parent == nav.currentPath || !fsutils.IsDir(parent) {
		return nav.tree, nil
	}
	return nav.Refresh(ctx, parent)
}

func newNodes(entries []files.DirEntry) []*Node {
	nodes := make([]*Node, len(entries))
	for i, entry := range entries {
		nodes[i] = newNode(entry)
	}
	return nodes
}
