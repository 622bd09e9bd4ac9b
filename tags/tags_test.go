package tags

import (
	"testing"

	"github.com/npillmayer/hbuild"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestTagsBuildPage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.dom")
	defer teardown()
	//
	document := hbuild.MakeRoot("")
	_, err := document.Doctype()
	require.NoError(t, err)
	html, err := HTML(document)
	require.NoError(t, err)
	head, err := Head(html)
	require.NoError(t, err)
	_, err = Title(head, "Demo")
	require.NoError(t, err)
	_, err = Meta(head, "viewport", "width=device-width")
	require.NoError(t, err)
	body, err := Body(html)
	require.NoError(t, err)
	main, err := Main(body, Opts{ID: "content"})
	require.NoError(t, err)
	h1, err := H1(main, Opts{})
	require.NoError(t, err)
	_, err = h1.Text("Hello")
	require.NoError(t, err)
	_, err = P(main, "World", Opts{Class: "lead"})
	require.NoError(t, err)
	//
	out := document.Render()
	t.Logf("html = %s", out)
	want := `<!DOCTYPE html><html><head><title>Demo</title>` +
		`<meta name="viewport" content="width=device-width" /></head>` +
		`<body><main id="content"><h1>Hello</h1><p class="lead">World</p></main></body></html>`
	require.Equal(t, want, out)
	require.Same(t, main, document.ElementByID("content"))
}

func TestTagsAttributeOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.dom")
	defer teardown()
	//
	// tag-specific attributes come first, then extras, then id and class
	root := hbuild.MakeRoot("div")
	a, err := A(root, "/home", "Home", Opts{
		ID:    "nav-home",
		Class: "active",
		Attrs: []hbuild.Attr{{Name: "rel", Value: "noopener"}},
	})
	require.NoError(t, err)
	want := `<a href="/home" rel="noopener" id="nav-home" class="active">Home</a>`
	require.Equal(t, want, a.Render())
}

func TestTagsEmptyValuesOmitted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.dom")
	defer teardown()
	//
	root := hbuild.MakeRoot("div")
	a, err := A(root, "", "bare link", Opts{})
	require.NoError(t, err)
	require.Equal(t, `<a>bare link</a>`, a.Render())
	img, err := Img(root, "", Opts{})
	require.NoError(t, err)
	require.Equal(t, `<img />`, img.Render())
}

func TestTagsFormDefaultsToGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.dom")
	defer teardown()
	//
	root := hbuild.MakeRoot("div")
	form, err := Form(root, "/submit", "", Opts{})
	require.NoError(t, err)
	method, ok := form.Attribute("method")
	require.True(t, ok)
	require.Equal(t, "get", method)
	//
	form2, err := Form(root, "/submit", "post", Opts{})
	require.NoError(t, err)
	require.Equal(t, `<form action="/submit" method="post"></form>`, form2.Render())
}

func TestTagsFormControls(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.dom")
	defer teardown()
	//
	root := hbuild.MakeRoot("div")
	form, err := Form(root, "/login", "post", Opts{})
	require.NoError(t, err)
	_, err = Label(form, "user", "Name:", Opts{})
	require.NoError(t, err)
	_, err = Input(form, "text", "user", Opts{ID: "user"})
	require.NoError(t, err)
	_, err = Button(form, "Log in", Opts{})
	require.NoError(t, err)
	//
	want := `<form action="/login" method="post">` +
		`<label for="user">Name:</label>` +
		`<input type="text" name="user" id="user" />` +
		`<button>Log in</button></form>`
	require.Equal(t, want, form.Render())
}

func TestTagsSelectWithOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.dom")
	defer teardown()
	//
	root := hbuild.MakeRoot("div")
	sel, err := Select(root, "color", "", Opts{})
	require.NoError(t, err)
	_, err = Option(sel, "r", "red", Opts{})
	require.NoError(t, err)
	_, err = Option(sel, "g", "green", Opts{})
	require.NoError(t, err)
	want := `<select name="color">` +
		`<option value="r">red</option><option value="g">green</option></select>`
	require.Equal(t, want, sel.Render())
}

func TestTagsVoidElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.dom")
	defer teardown()
	//
	root := hbuild.MakeRoot("div")
	br, err := Br(root, Opts{})
	require.NoError(t, err)
	require.True(t, br.IsVoid())
	hr, err := Hr(root, Opts{})
	require.NoError(t, err)
	require.True(t, hr.IsVoid())
	require.Equal(t, `<div><br /><hr /></div>`, root.Render())
}

func TestTagsTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.dom")
	defer teardown()
	//
	root := hbuild.MakeRoot("div")
	table, err := Table(root, Opts{})
	require.NoError(t, err)
	_, err = Caption(table, "Results", Opts{})
	require.NoError(t, err)
	thead, err := Thead(table, Opts{})
	require.NoError(t, err)
	row, err := Tr(thead, Opts{})
	require.NoError(t, err)
	_, err = Th(row, "Name", Opts{})
	require.NoError(t, err)
	tbody, err := Tbody(table, Opts{})
	require.NoError(t, err)
	row, err = Tr(tbody, Opts{})
	require.NoError(t, err)
	_, err = Td(row, "Alice", Opts{})
	require.NoError(t, err)
	//
	want := `<table><caption>Results</caption>` +
		`<thead><tr><th>Name</th></tr></thead>` +
		`<tbody><tr><td>Alice</td></tr></tbody></table>`
	require.Equal(t, want, table.Render())
}
