package query

import (
	"testing"

	"github.com/npillmayer/hbuild"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func buildPage(t *testing.T) *hbuild.Element {
	page, err := hbuild.Parse(`<div id="app" class="shell">` +
		`<nav><a href="/home" class="active">Home</a><a href="/docs">Docs</a></nav>` +
		`<main><p class="lead">intro</p><p>body</p></main>` +
		`</div>`)
	require.NoError(t, err)
	return page
}

func TestQueryAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.query")
	defer teardown()
	//
	page := buildPage(t)
	links, err := All(page, "nav a")
	require.NoError(t, err)
	require.Len(t, links, 2)
	href, _ := links[0].Attribute("href")
	require.Equal(t, "/home", href)
	href, _ = links[1].Attribute("href")
	require.Equal(t, "/docs", href)
}

func TestQueryByClassAndID(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.query")
	defer teardown()
	//
	page := buildPage(t)
	hits, err := All(page, ".active")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	require.Equal(t, "a", hits[0].TagName())
	//
	app, err := First(page, "#app")
	require.NoError(t, err)
	require.NotNil(t, app)
	require.Same(t, page.ElementByID("app"), app)
}

func TestQueryFirst(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.query")
	defer teardown()
	//
	page := buildPage(t)
	lead, err := First(page, "main > p")
	require.NoError(t, err)
	require.NotNil(t, lead)
	require.Equal(t, "intro", lead.InnerHTML())
	//
	none, err := First(page, "table")
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestQuerySelectorGroup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.query")
	defer teardown()
	//
	page := buildPage(t)
	hits, err := All(page, "nav, main")
	require.NoError(t, err)
	require.Len(t, hits, 2)
}

func TestQueryScopeIncluded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.query")
	defer teardown()
	//
	div, err := hbuild.New("div", hbuild.WithClass("shell"))
	require.NoError(t, err)
	hits, err := All(div, "div.shell")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	require.Same(t, div, hits[0])
}

func TestQueryBadSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.query")
	defer teardown()
	//
	page := buildPage(t)
	_, err := All(page, "p[")
	require.Error(t, err)
	_, err = First(page, "p[")
	require.Error(t, err)
}

func TestQueryFlattensTaglessNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbuild.query")
	defer teardown()
	//
	// children of a tagless grouping node count as children of the
	// nearest tagged ancestor
	div := hbuild.MakeRoot("div")
	group, err := hbuild.New("", hbuild.WithParent(div))
	require.NoError(t, err)
	span, err := hbuild.New("span", hbuild.WithParent(group))
	require.NoError(t, err)
	hit, err := First(div, "div > span")
	require.NoError(t, err)
	require.Same(t, span, hit)
}
