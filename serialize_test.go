package hbuild

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRenderSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.dom")
	defer teardown()
	//
	div, err := New("div", WithID("x"))
	if err != nil {
		t.Fatal(err)
	}
	p, err := New("p", WithParent(div))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Text("hello"); err != nil {
		t.Fatal(err)
	}
	html := div.Render()
	t.Logf("html = %s", html)
	if html != `<div id="x"><p>hello</p></div>` {
		t.Errorf("unexpected rendering: %s", html)
	}
}

func TestRenderVoid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.dom")
	defer teardown()
	//
	img, err := New("img", WithAttributes(Attr{Name: "src", Value: "a.png"}))
	if err != nil {
		t.Fatal(err)
	}
	if img.Render() != `<img src="a.png" />` {
		t.Errorf("unexpected rendering: %s", img.Render())
	}
}

func TestRenderAttributeOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.dom")
	defer teardown()
	//
	a, err := New("a")
	if err != nil {
		t.Fatal(err)
	}
	a.SetAttribute("href", "/home")
	a.SetAttribute("target", "_blank")
	a.SetAttribute("rel", "noopener")
	want := `<a href="/home" target="_blank" rel="noopener"></a>`
	for i := 0; i < 10; i++ { // order must be stable
		if html := a.Render(); html != want {
			t.Fatalf("unexpected rendering: %s", html)
		}
	}
}

func TestRenderNoEscaping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.dom")
	defer teardown()
	//
	span, err := New("span", WithAttributes(Attr{Name: "title", Value: `say "hi" & <bye>`}))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := span.Text("a < b && c > d"); err != nil {
		t.Fatal(err)
	}
	html := span.Render()
	t.Logf("html = %s", html)
	// values pass through verbatim, escaping is the caller's business
	if html != `<span title="say "hi" & <bye>">a < b && c > d</span>` {
		t.Errorf("unexpected rendering: %s", html)
	}
}

func TestRenderTaglessContainer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.dom")
	defer teardown()
	//
	root := MakeRoot("")
	if _, err := New("p", WithParent(root)); err != nil {
		t.Fatal(err)
	}
	if _, err := New("p", WithParent(root)); err != nil {
		t.Fatal(err)
	}
	if root.Render() != "<p></p><p></p>" {
		t.Errorf("unexpected rendering: %s", root.Render())
	}
	if root.Render() != root.InnerHTML() {
		t.Error("expected a tagless container to render as its inner HTML")
	}
}

func TestInnerHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.dom")
	defer teardown()
	//
	ul := MakeRoot("ul")
	for _, item := range []string{"one", "two"} {
		li, err := New("li", WithParent(ul))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := li.Text(item); err != nil {
			t.Fatal(err)
		}
	}
	if ul.InnerHTML() != "<li>one</li><li>two</li>" {
		t.Errorf("unexpected inner HTML: %s", ul.InnerHTML())
	}
}

func TestSetInnerHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.dom")
	defer teardown()
	//
	root := MakeRoot("div")
	old, err := New("p", WithID("stale"), WithParent(root))
	if err != nil {
		t.Fatal(err)
	}
	if err := root.SetInnerHTML(`<span id="fresh">new</span>`); err != nil {
		t.Fatal(err)
	}
	t.Logf("tree =\n%s", printTree(root))
	if root.InnerHTML() != `<span id="fresh">new</span>` {
		t.Errorf("unexpected inner HTML: %s", root.InnerHTML())
	}
	// old children are gone and deregistered, new ids are registered
	if root.ElementByID("stale") != nil {
		t.Error("expected 'stale' to be deregistered, isn't")
	}
	if root.ElementByID("fresh") == nil {
		t.Error("expected 'fresh' to be registered, isn't")
	}
	if old.Parent() != nil {
		t.Error("expected the replaced child to be detached, isn't")
	}
}

func TestSetInnerHTMLOnVoid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.dom")
	defer teardown()
	//
	br, err := New("br")
	if err != nil {
		t.Fatal(err)
	}
	if err := br.SetInnerHTML("<p>nope</p>"); !errors.Is(err, ErrVoidElement) {
		t.Errorf("expected ErrVoidElement, got %v", err)
	}
}
