package markup

import (
	"context"
	"strings"
	"testing"

	"github.com/pthm/declui"
)

func renderText(t *testing.T) *declui.RenderedComponent {
	t.Helper()
	text := declui.NewSpec("Text").Prop("text", declui.TypeString)
	rec, err := text.MustCreate(declui.Props{"text": "hello"}).Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return rec
}

func TestString(t *testing.T) {
	got, err := String(renderText(t))
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	if got != "<Text text={`hello`}/>" {
		t.Errorf("String() = %q", got)
	}
}

func TestAttrs(t *testing.T) {
	attrs := Attrs(renderText(t))
	if got, ok := attrs["text"].(string); !ok || got != "`hello`" {
		t.Errorf("Attrs()[text] = %v, want `hello`", attrs["text"])
	}
}

func TestDocument(t *testing.T) {
	rec := renderText(t)
	imports := declui.ImportDict{
		"react": {
			{Tag: "React", IsDefault: true},
			{Tag: "useState"},
			{Tag: "useEffect", Alias: "effect"},
		},
		"side-effect-lib": nil,
	}
	hooks := map[string]string{
		"const ref = useRef(null)": "",
		"const [n, setN]":          "= useState(0)",
	}
	code := map[string]struct{}{"const helper = () => null": {}}

	var sb strings.Builder
	if err := Document(rec, imports, hooks, code).Render(context.Background(), &sb); err != nil {
		t.Fatalf("Document render error = %v", err)
	}
	got := sb.String()

	want := []string{
		`import React, { useEffect as effect, useState } from "react"` + "\n",
		`import "side-effect-lib"` + "\n",
		"const helper = () => null\n",
		"const [n, setN] = useState(0)\n",
		"const ref = useRef(null)\n",
		"<Text text={`hello`}/>",
	}
	last := -1
	for _, w := range want {
		idx := strings.Index(got, w)
		if idx < 0 {
			t.Errorf("document missing %q:\n%s", w, got)
			continue
		}
		if idx < last {
			t.Errorf("document section %q out of order:\n%s", w, got)
		}
		last = idx
	}
}
