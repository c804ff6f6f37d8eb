package output

import (
	"fmt"
	"strings"

	"github.com/marcus/lightbox/internal/models"
)

// TreeNode represents a node in a tree structure for rendering
type TreeNode struct {
	ID       string
	Title    string
	Tag      models.Tag
	Note     string // trailing detail, e.g. the media source
	Children []TreeNode
}

// TreeRenderOptions configures tree rendering behavior
type TreeRenderOptions struct {
	MaxDepth    int  // 0 = unlimited
	ShowTag     bool // prefix leaves with their tag label
	ShowNote    bool
	Indentation int // base indentation in spaces
}

// RenderTree renders a tree starting from a single root node
// Returns the complete tree as a string (without the root - just children)
func RenderTree(root TreeNode, opts TreeRenderOptions) string {
	return strings.Join(RenderTreeLines(root.Children, opts), "\n")
}

// RenderTreeLines renders multiple root nodes and returns individual lines
func RenderTreeLines(roots []TreeNode, opts TreeRenderOptions) []string {
	return renderTreeNodes(roots, opts, 0, strings.Repeat(" ", opts.Indentation))
}

func renderTreeNodes(nodes []TreeNode, opts TreeRenderOptions, depth int, prefix string) []string {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return nil
	}

	var lines []string
	for i, node := range nodes {
		isLast := i == len(nodes)-1

		connector := "\u251c\u2500\u2500 " // ├──
		if isLast {
			connector = "\u2514\u2500\u2500 " // └──
		}

		var parts []string
		if opts.ShowTag && node.Tag != "" {
			parts = append(parts, FormatTag(node.Tag))
		}
		if node.ID != "" {
			parts = append(parts, node.ID+":")
		}
		parts = append(parts, node.Title)
		if opts.ShowNote && node.Note != "" {
			parts = append(parts, Muted(node.Note))
		}
		lines = append(lines, prefix+connector+strings.Join(parts, " "))

		childPrefix := prefix
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "\u2502   " // │
		}
		lines = append(lines, renderTreeNodes(node.Children, opts, depth+1, childPrefix)...)
	}
	return lines
}

// ItemNode builds the leaf for one media item
func ItemNode(item models.MediaItem) TreeNode {
	return TreeNode{
		ID:    fmt.Sprintf("#%d", item.ID),
		Title: item.Title(),
		Tag:   item.Tag,
		Note:  item.Src,
	}
}

// GroupTree arranges items under their groups. Groups appear in first
// encounter order; ungrouped items follow as top level leaves.
func GroupTree(items []models.MediaItem) []TreeNode {
	var roots []TreeNode
	groupAt := make(map[string]int)
	var loose []TreeNode

	for _, item := range items {
		if !item.Grouped() {
			loose = append(loose, ItemNode(item))
			continue
		}
		idx, ok := groupAt[item.Group]
		if !ok {
			idx = len(roots)
			groupAt[item.Group] = idx
			roots = append(roots, TreeNode{Title: "group " + item.Group})
		}
		roots[idx].Children = append(roots[idx].Children, ItemNode(item))
	}
	for i := range roots {
		roots[i].Note = fmt.Sprintf("(%d)", len(roots[i].Children))
	}
	return append(roots, loose...)
}
