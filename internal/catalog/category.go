package catalog

import "github.com/google/uuid"

// Category is a node in the product category tree. Categories are created
// once, shared by reference between products and campaigns, and never
// mutated afterwards. A nil Parent marks a root category.
type Category struct {
	ID     uuid.UUID
	Title  string
	Parent *Category
}

// NewCategory constructs a category, optionally attached under a parent.
// The parent chain is expected to be acyclic.
func NewCategory(title string, parent *Category) *Category {
	return &Category{ID: uuid.New(), Title: title, Parent: parent}
}

// IsAncestorOf reports whether c appears anywhere in node's parent chain.
// node itself does not count as its own ancestor.
func (c *Category) IsAncestorOf(node *Category) bool {
	if c == nil || node == nil {
		return false
	}
	for cur := node.Parent; cur != nil; cur = cur.Parent {
		if cur == c {
			return true
		}
	}
	return false
}

// Covers reports whether other is c itself or a strict descendant of c.
// Campaign scoping uses this to decide which cart lines a category-bound
// discount reaches.
func (c *Category) Covers(other *Category) bool {
	if c == nil || other == nil {
		return false
	}
	return other == c || c.IsAncestorOf(other)
}
