package record

import "sgf_keeper/internal/domain/sgf"

// PropertyView renders list values as arrays and single values as strings.
type PropertyView struct {
	ID    string `json:"id" yaml:"id"`
	Value any    `json:"value" yaml:"value"`
}

type NodeView struct {
	Properties []PropertyView `json:"properties" yaml:"properties"`
	Children   []NodeView     `json:"children,omitempty" yaml:"children,omitempty"`
}

type TreeView struct {
	Root NodeView `json:"root" yaml:"root"`
}

func ViewCollection(c *sgf.Collection) []TreeView {
	views := make([]TreeView, 0, len(c.Trees))
	for _, t := range c.Trees {
		views = append(views, TreeView{Root: viewNode(t.Root)})
	}
	return views
}

func viewNode(n *sgf.Node) NodeView {
	props := n.Properties()
	view := NodeView{Properties: make([]PropertyView, 0, len(props))}
	for _, p := range props {
		var value any = p.Value.String()
		if p.Value.IsList() {
			value = p.Value.Items()
		}
		view.Properties = append(view.Properties, PropertyView{ID: p.ID, Value: value})
	}
	for _, c := range n.Children() {
		view.Children = append(view.Children, viewNode(c))
	}
	return view
}
