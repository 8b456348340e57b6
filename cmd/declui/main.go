// Command declui compiles a small demo component tree to markup on
// stdout, exercising the full pipeline: spec registration, Var
// tracking, event binding, memoization, and serialization.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pthm/declui"
	"github.com/pthm/declui/lib/markup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "declui:", err)
		os.Exit(1)
	}
}

func run() error {
	text := declui.NewSpec("Text").
		Lib("@radix-ui/themes").
		Prop("as_", declui.TypeString).
		Rename("as_", "as")

	button := declui.NewSpec("Button").
		Lib("@radix-ui/themes").
		Prop("variant", declui.TypeString)

	app := declui.NewState("app_state")

	greeting, err := text.Create(
		declui.Sprintf("Hello, %v!", app.Var("name", declui.TypeString)),
		declui.Props{"as_": "p"},
	)
	if err != nil {
		return err
	}

	clicker, err := button.Create(
		"Click me",
		declui.Props{
			"variant":  "soft",
			"on_click": app.Handler("increment"),
		},
	)
	if err != nil {
		return err
	}

	root := declui.Fragment(greeting, clicker)

	ctx := declui.NewCompileContext()
	memoized, err := ctx.CompileStateful(clicker)
	if err != nil {
		return err
	}
	if sc, ok := declui.AsStateful(memoized); ok {
		fmt.Fprintf(os.Stderr, "memoized %s (%d refs)\n", sc.Tag(), sc.References())
	}

	rec, err := root.Render()
	if err != nil {
		return err
	}
	doc := markup.Document(rec, root.GetAllImports(), root.GetAllHooks(), root.GetAllCustomCode())
	return doc.Render(context.Background(), os.Stdout)
}
