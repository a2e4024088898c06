package glass

import (
	"github.com/gdamore/tcell/v2"
	"github.com/glassexplorer/glassexplorer/pkg/logging"
	"github.com/glassexplorer/glassexplorer/pkg/navtree"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const treeTitle = "Explorador de Archivos"

// treePanel mirrors the navigator's tree. Every tview node references its *navtree.Node.
type treePanel struct {
	*tview.TreeView
	boxed *boxed
	e     *Explorer

	// rendering mutes the changed callback while the widget is rebuilt.
	rendering bool
}

func newTreePanel(e *Explorer) *treePanel {
	tv := tview.NewTreeView()
	t := &treePanel{
		TreeView: tv,
		boxed:    newBoxed(tv, treeTitle, WithLeftBorder(), WithRightBorder()),
		e:        e,
	}
	t.SetRoot(tview.NewTreeNode("~"))
	t.SetChangedFunc(t.changed)
	t.SetSelectedFunc(t.toggle)
	t.SetInputCapture(t.inputCapture)
	t.SetGraphicsColor(Style.BlurGraphicsColor)
	t.SetFocusFunc(func() {
		t.SetGraphicsColor(Style.FocusedGraphicsColor)
	})
	t.SetBlurFunc(func() {
		t.SetGraphicsColor(Style.BlurGraphicsColor)
	})
	return t
}

func (t *treePanel) Draw(screen tcell.Screen) {
	t.boxed.Draw(screen)
}

// render rebuilds the widget from tree and puts the cursor on selectedPath,
// or on the root when it is not displayed.
func (t *treePanel) render(tree *navtree.Tree, selectedPath string) {
	if tree == nil || tree.Root == nil {
		return
	}
	t.rendering = true
	defer func() {
		t.rendering = false
	}()
	root := newTreeNode(tree.Root)
	t.SetRoot(root)
	current := root
	if selectedPath != "" {
		root.Walk(func(node, _ *tview.TreeNode) bool {
			if n, ok := node.GetReference().(*navtree.Node); ok && n.Path() == selectedPath {
				current = node
				return false
			}
			return true
		})
	}
	t.SetCurrentNode(current)
}

func newTreeNode(n *navtree.Node) *tview.TreeNode {
	node := tview.NewTreeNode(n.Label()).
		SetReference(n).
		SetSelectable(true).
		SetExpanded(n.Expanded)
	if n.IsDir() {
		node.SetColor(tcell.ColorLightSkyBlue)
	}
	for _, child := range n.Children {
		node.AddChild(newTreeNode(child))
	}
	return node
}

func (t *treePanel) currentModel() *navtree.Node {
	current := t.GetCurrentNode()
	if current == nil {
		return nil
	}
	n, _ := current.GetReference().(*navtree.Node)
	return n
}

func (t *treePanel) changed(node *tview.TreeNode) {
	if t.rendering {
		return
	}
	n, ok := node.GetReference().(*navtree.Node)
	if !ok {
		return
	}
	t.e.selectPath(&t.e.state, n.Path())
}

// toggle expands a collapsed directory, listing it again, or collapses an expanded one.
func (t *treePanel) toggle(node *tview.TreeNode) {
	n, ok := node.GetReference().(*navtree.Node)
	if !ok || !n.IsDir() {
		return
	}
	if n.Expanded {
		t.collapse(n)
	} else {
		t.expand(n)
	}
}

func (t *treePanel) expand(n *navtree.Node) {
	if n == nil || !n.IsDir() {
		return
	}
	if err := t.e.nav.Expand(t.e.ctx, n); err != nil {
		t.e.fail("expand", n.Path(), "Error: %v", err)
	} else {
		logging.L().Debug("expanded", zap.String("path", n.Path()), zap.Int("children", len(n.Children)))
	}
	t.render(t.e.nav.Tree(), n.Path())
}

func (t *treePanel) collapse(n *navtree.Node) {
	if n == nil || !n.Expanded {
		return
	}
	t.e.nav.Collapse(n)
	t.render(t.e.nav.Tree(), n.Path())
}

func (t *treePanel) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEnter:
		t.e.open(&t.e.state)
		return nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		t.e.goUp(&t.e.state)
		return nil
	case tcell.KeyRight:
		t.expand(t.currentModel())
		return nil
	case tcell.KeyLeft:
		t.collapse(t.currentModel())
		return nil
	case tcell.KeyRune:
		if event.Rune() == ' ' {
			if current := t.GetCurrentNode(); current != nil {
				t.toggle(current)
			}
			return nil
		}
	}
	return event
}
