package htmldbg

import (
	"strings"
	"testing"

	"github.com/npillmayer/hbuild"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func buildTree(t *testing.T) *hbuild.Element {
	root := hbuild.MakeRoot("div")
	if err := root.SetID("app"); err != nil {
		t.Fatal(err)
	}
	p, err := hbuild.New("p", hbuild.WithParent(root))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Text("hello"); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestTreeDiagram(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.dom")
	defer teardown()
	//
	root := buildTree(t)
	diagram := Tree(root)
	t.Logf("tree =\n%s", diagram)
	if !strings.Contains(diagram, "div#app") {
		t.Error("expected diagram to contain 'div#app', doesn't")
	}
	if !strings.Contains(diagram, "p") {
		t.Error("expected diagram to contain the p element, doesn't")
	}
}

func TestToGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.dom")
	defer teardown()
	//
	root := buildTree(t)
	var sb strings.Builder
	ToGraphViz(root, &sb)
	dot := sb.String()
	t.Logf("dot =\n%s", dot)
	if !strings.HasPrefix(dot, "digraph g {") {
		t.Error("expected DOT output to start with a digraph header")
	}
	if !strings.Contains(dot, `"div"`) || !strings.Contains(dot, `"p"`) {
		t.Error("expected DOT output to contain element nodes")
	}
	if !strings.Contains(dot, "->") {
		t.Error("expected DOT output to contain edges")
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Error("expected DOT output to be closed")
	}
}
