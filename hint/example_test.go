package hint_test

import (
	"context"
	"fmt"

	"github.com/karupanerura/resource-loader/hint"
	"github.com/karupanerura/resource-loader/hint/hinttest"
)

func ExampleHinter_LoadStylesheet() {
	ctx := context.Background()
	registrar := hinttest.NewRegistrar()
	hinter := hint.NewHinter(registrar)

	// The first call registers the stylesheet and waits for it to apply
	if err := hinter.LoadStylesheet(ctx, "theme.css"); err != nil {
		fmt.Println("Error:", err)
		return
	}

	// A second call for the same reference is a no-op
	if err := hinter.LoadStylesheet(ctx, "theme.css"); err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(registrar.Stylesheets())
	// Output:
	// [theme.css]
}

func ExampleHinter_Preload() {
	ctx := context.Background()
	registrar := hinttest.NewRegistrar()
	hinter := hint.NewHinter(registrar)

	// Preload returns immediately; the registration happens in the background
	hinter.Preload("assets/app.js", hint.KindScript)

	registered, err := registrar.AwaitHint(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("%s %s %s\n", registered.Rel, registered.As, registered.URL)
	// Output:
	// preload script assets/app.js
}
