package resourceloader_test

import (
	"context"
	"fmt"

	resourceloader "github.com/karupanerura/resource-loader"
	"github.com/karupanerura/resource-loader/fetch"
	"github.com/karupanerura/resource-loader/store/memstore"
)

func ExampleLoader_Load() {
	ctx := context.Background()

	// Simulate the environment's dynamic import capability
	var fetches int
	fetcher := fetch.Func[string](func(_ context.Context, key string) (string, error) {
		fetches++
		return "module:" + key, nil
	})

	loader := resourceloader.NewLoader(memstore.NewInMemoryStore[string](), fetcher)

	// The first load fetches the module
	value, err := loader.Load(ctx, "pages/login")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(value)

	// Repeated loads are served from the cache
	value, _ = loader.Load(ctx, "pages/login")
	fmt.Println(value)
	fmt.Println("fetches:", fetches)

	loaded, _ := loader.IsLoaded(ctx, "pages/login")
	fmt.Println("loaded:", loaded)

	// Unloading makes the next load fetch again
	_ = loader.Unload(ctx, "pages/login")
	loaded, _ = loader.IsLoaded(ctx, "pages/login")
	fmt.Println("loaded:", loaded)

	// Output:
	// module:pages/login
	// module:pages/login
	// fetches: 1
	// loaded: true
	// loaded: false
}

func ExampleLoader_LoadMulti() {
	ctx := context.Background()

	fetcher := fetch.Static[string]{
		"chunks/vendor.js": "vendor chunk",
		"chunks/app.js":    "app chunk",
	}
	loader := resourceloader.NewLoader[string](memstore.NewInMemoryStore[string](), fetcher)

	values, err := loader.LoadMulti(ctx, []string{"chunks/vendor.js", "chunks/app.js"})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, value := range values {
		fmt.Println(value)
	}

	n, _ := loader.Count(ctx)
	fmt.Println("cached:", n)

	// Output:
	// vendor chunk
	// app chunk
	// cached: 2
}
