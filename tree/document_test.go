package tree_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/snippetkit/registry"
	"github.com/randalmurphal/snippetkit/snippet"
	"github.com/randalmurphal/snippetkit/tree"
)

func loadButtons(t *testing.T, opts ...tree.Option) *tree.Document {
	t.Helper()
	doc, err := tree.Load(filepath.Join("testdata", "buttons.yaml"), opts...)
	require.NoError(t, err)
	return doc
}

func find(t *testing.T, doc *tree.Document, id string) *tree.Node {
	t.Helper()
	n, ok := doc.Find(id)
	require.True(t, ok, "node %s", id)
	return n
}

func TestLoad(t *testing.T) {
	doc := loadButtons(t)

	roots := doc.Roots()
	require.Len(t, roots, 3)
	assert.Equal(t, "1:1", roots[0].ID())
	assert.Equal(t, "2:1", roots[1].ID())
	assert.Equal(t, snippet.TypeVector, roots[2].Type())

	set := find(t, doc, "1:1")
	assert.Nil(t, set.Parent())
	assert.Nil(t, set.MainComponent())

	variant := find(t, doc, "1:2")
	assert.Equal(t, set, variant.Parent())

	instance := find(t, doc, "2:4")
	assert.Equal(t, variant, instance.MainComponent())
	assert.Equal(t, "2:3", instance.Parent().ID())
	assert.True(t, instance.Visible())
	assert.False(t, find(t, doc, "2:6").Visible())

	_, ok := doc.Find("9:9")
	assert.False(t, ok)
}

func TestDocument_Walk(t *testing.T) {
	doc := loadButtons(t)

	var ids []string
	doc.Walk(func(n *tree.Node) bool {
		ids = append(ids, n.ID())
		return n.ID() != "2:4"
	})
	assert.Equal(t, []string{"1:1", "1:2", "1:3", "2:1", "2:2", "2:3", "2:4"}, ids)
}

func TestDocument_ComponentsByKey(t *testing.T) {
	doc := loadButtons(t)

	byKey := doc.ComponentsByKey()
	require.Len(t, byKey, 1)
	nodes := byKey["7e95f3069ff381e6d1ea1e34d13d82045be8e249"]
	require.Len(t, nodes, 1)
	assert.Equal(t, "1:1", nodes[0].ID())
}

func TestDocument_Params(t *testing.T) {
	doc := loadButtons(t)
	ctx := context.Background()

	tests := []struct {
		id   string
		want map[string]string
		raw  map[string]string
	}{
		{
			id: "2:1",
			want: map[string]string{
				"node.name":             "buttons-frame",
				"node.type":             "frame",
				"node.children":         "2",
				"variables.fills":       "color-bg-subtle",
				"autolayout.layoutMode": "vertical",
			},
			raw: map[string]string{
				"node.name":             "Buttons Frame",
				"node.type":             "FRAME",
				"variables.fills":       "color/bg-subtle",
				"autolayout.layoutMode": "VERTICAL",
			},
		},
		{
			id: "2:2",
			want: map[string]string{
				"node.name":       "heyo-look-at-this",
				"node.type":       "text",
				"node.characters": "heyo-look-at-this",
				"node.textStyle":  "heading-02",
			},
			raw: map[string]string{
				"node.characters": "Heyo look at this",
				"node.textStyle":  "Heading 02",
			},
		},
		{
			id: "2:3",
			want: map[string]string{
				"node.children": "2",
			},
		},
		{
			id: "2:4",
			want: map[string]string{
				"node.type":          "instance",
				"component.name":     "button",
				"component.type":     "component-set",
				"component.key":      "7e95f3069ff381e6d1ea1e34d13d82045be8e249",
				"property.size":      "small",
				"property.variant":   "inverse",
				"property.iconEnd.i": "icon-refresh",
			},
			raw: map[string]string{
				"component.type":     "COMPONENT_SET",
				"component.key":      "7e95f3069ff381e6d1ea1e34d13d82045be8e249",
				"property.size":      "small",
				"property.label":     "Cancel",
				"property.iconEnd.i": "Icon Refresh",
			},
		},
		{
			id: "1:1",
			want: map[string]string{
				"node.key":      "7e95f3069ff381e6d1ea1e34d13d82045be8e249",
				"node.children": "2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			params, err := doc.Params(ctx, find(t, doc, tt.id))
			require.NoError(t, err)
			for key, want := range tt.want {
				got, ok := params.Lookup(key)
				assert.True(t, ok, key)
				assert.Equal(t, want, got, key)
			}
			for key, want := range tt.raw {
				assert.Equal(t, want, params.Raw(key), key)
			}
		})
	}
}

func TestDocument_Params_SuppliedValuesWin(t *testing.T) {
	doc, err := tree.Parse([]byte(`{"nodes": [{"id": "1", "type": "TEXT", "name": "Title", "params": {"node.name": "custom"}, "paramsRaw": {"node.name": "Custom"}}]}`), registry.FormatJSON)
	require.NoError(t, err)

	params, err := doc.Params(context.Background(), doc.Roots()[0])
	require.NoError(t, err)
	got, _ := params.Lookup("node.name")
	assert.Equal(t, "custom", got)
	assert.Equal(t, "Custom", params.Raw("node.name"))
	assert.False(t, params.Has("node.children"), "text nodes have no children count")
}

func TestDocument_Children(t *testing.T) {
	doc := loadButtons(t)

	children, err := doc.Children(context.Background(), find(t, doc, "2:3"))
	require.NoError(t, err)
	require.Len(t, children, 2, "hidden children are excluded")
	assert.Equal(t, "2:4", children[0].ID())
	assert.Equal(t, "2:5", children[1].ID())
	assert.Len(t, find(t, doc, "2:3").Children(), 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = doc.Children(ctx, find(t, doc, "2:3"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDocument_ExportSVG(t *testing.T) {
	doc := loadButtons(t)

	svg, err := doc.ExportSVG(context.Background(), find(t, doc, "3:1"))
	require.NoError(t, err)
	assert.Equal(t, `<svg viewBox="0 0 16 16"/>`, svg)

	_, err = doc.ExportSVG(context.Background(), find(t, doc, "2:1"))
	assert.ErrorIs(t, err, snippet.ErrUnsupported)
}

func TestDocument_ForeignNode(t *testing.T) {
	doc := loadButtons(t)
	other := loadButtons(t)
	foreign := find(t, other, "2:1")
	ctx := context.Background()

	_, err := doc.Params(ctx, foreign)
	assert.ErrorIs(t, err, tree.ErrNodeNotFound)
	_, err = doc.Templates(ctx, foreign)
	assert.ErrorIs(t, err, tree.ErrNodeNotFound)
	_, err = doc.Children(ctx, nil)
	assert.ErrorIs(t, err, tree.ErrNodeNotFound)
	_, err = doc.ExportSVG(ctx, (*tree.Node)(nil))
	assert.ErrorIs(t, err, tree.ErrNodeNotFound)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{name: "duplicate id", doc: `{"nodes": [{"id": "1", "type": "FRAME"}, {"id": "1", "type": "TEXT"}]}`, want: tree.ErrDuplicateID},
		{name: "nested duplicate id", doc: `{"nodes": [{"id": "1", "type": "FRAME", "children": [{"id": "1", "type": "TEXT"}]}]}`, want: tree.ErrDuplicateID},
		{name: "dangling main component", doc: `{"nodes": [{"id": "1", "type": "INSTANCE", "mainComponent": "9"}]}`, want: tree.ErrNodeNotFound},
		{name: "main component on frame", doc: `{"nodes": [{"id": "1", "type": "COMPONENT"}, {"id": "2", "type": "FRAME", "mainComponent": "1"}]}`, want: tree.ErrInvalidDocument},
		{name: "main component not a component", doc: `{"nodes": [{"id": "1", "type": "FRAME"}, {"id": "2", "type": "INSTANCE", "mainComponent": "1"}]}`, want: tree.ErrInvalidDocument},
		{name: "children on text", doc: `{"nodes": [{"id": "1", "type": "TEXT", "children": [{"id": "2", "type": "TEXT"}]}]}`, want: tree.ErrInvalidDocument},
		{name: "missing id", doc: `{"nodes": [{"type": "FRAME"}]}`, want: tree.ErrInvalidDocument},
		{name: "missing type", doc: `{"nodes": [{"id": "1"}]}`, want: tree.ErrInvalidDocument},
		{name: "invalid template", doc: `{"nodes": [{"id": "1", "type": "FRAME", "templates": [{"title": "x", "language": "JSX", "code": ""}]}]}`, want: snippet.ErrInvalidDefinition},
		{name: "unknown field", doc: `{"nodes": [{"id": "1", "type": "FRAME", "colour": "red"}]}`, want: tree.ErrInvalidDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tree.Parse([]byte(tt.doc), registry.FormatJSON)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad_UnknownFormat(t *testing.T) {
	_, err := tree.Load("document.xml")
	assert.ErrorIs(t, err, registry.ErrUnknownFormat)
}
