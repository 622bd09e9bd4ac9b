/*
Package htmldbg implements helpers to debug an HTML element tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package htmldbg

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/hbuild"
	tp "github.com/xlab/treeprint"
)

// Tree returns an ASCII diagram of the element tree below e, one line
// per node. Intended for test logs.
func Tree(e *hbuild.Element) string {
	t := tp.New()
	branch(t, e)
	return t.String()
}

func branch(t tp.Tree, e *hbuild.Element) {
	b := t.AddBranch(label(e))
	for _, ch := range e.Children() {
		branch(b, ch)
	}
}

func label(e *hbuild.Element) string {
	if e.TagName() == "" {
		return shortText(e.Content())
	}
	l := e.TagName()
	if id, ok := e.Attribute("id"); ok {
		l += "#" + id
	}
	if class, ok := e.Attribute("class"); ok {
		l += "." + class
	}
	return l
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for an element tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root element of the
// tree and a Writer.
func ToGraphViz(root *hbuild.Element, w io.Writer) {
	tmpl, err := template.New("tree").Parse(graphHeadTmpl)
	if err != nil {
		panic(err)
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl, _ = template.New("treenode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(treeNodeTmpl)
	gparams.EdgeTmpl = template.Must(template.New("treeedge").Parse(treeEdgeTmpl))
	err = tmpl.Execute(w, gparams)
	if err != nil {
		panic(err)
	}
	dict := make(map[*hbuild.Element]string, 4096)
	elements(root, w, dict, &gparams)
	w.Write([]byte("}\n"))
}

// Dotty is a helper for testing. Given an element and a testing.T, it will
// create a GraphViz image of the tree under `root` and write it to a file
// in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(root *hbuild.Element, t *testing.T) {
	tmpfile, err := ioutil.TempFile(".", "tree.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing tree digraph to %s\n", tmpfile.Name())
	ToGraphViz(root, tmpfile)
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Log("writing tree image to SVG file\n")
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	E    *hbuild.Element
	Name string
}

func elements(e *hbuild.Element, w io.Writer, dict map[*hbuild.Element]string, gparams *graphParamsType) {
	treeNode(e, w, dict, gparams)
	for _, ch := range e.Children() {
		elements(ch, w, dict, gparams)
		treeEdge(e, ch, w, dict, gparams)
	}
}

func treeNode(e *hbuild.Element, w io.Writer, dict map[*hbuild.Element]string, gparams *graphParamsType) {
	name := dict[e]
	if name == "" {
		l := len(dict) + 1
		name = fmt.Sprintf("node%05d", l)
		dict[e] = name
	}
	if err := gparams.NodeTmpl.Execute(w, &node{e, name}); err != nil {
		panic(err)
	}
}

type edge struct {
	N1, N2 node
}

func treeEdge(e1 *hbuild.Element, e2 *hbuild.Element, w io.Writer, dict map[*hbuild.Element]string,
	gparams *graphParamsType) {
	//
	name1 := dict[e1]
	name2 := dict[e2]
	e := edge{node{e1, name1}, node{e2, name2}}
	if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
		panic(err)
	}
}

func shortText(text string) string {
	s := "\"\\\""
	if len(text) > 10 {
		s += text[:10] + "...\\\"\""
	} else {
		s += text + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [{{ .Fontname }} = "helvetica" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const treeNodeTmpl = `{{ if eq .E.TagName "" }}
{{ .Name }}	[ label={{ shortstring .E.Content }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .E.TagName }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const treeEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
