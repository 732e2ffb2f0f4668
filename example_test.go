package splint_test

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/aretw0/splint"
	"github.com/aretw0/splint/internal/logging"
	"github.com/aretw0/splint/pkg/adapters/memlib"
	"github.com/aretw0/splint/pkg/modules"
	"github.com/aretw0/splint/pkg/ports"
	"github.com/aretw0/splint/pkg/registry"
)

// ExampleShim_Apply shows the whole lifecycle: stand up the library modules,
// install the patches, and load a config the unpatched library rejects.
func ExampleShim_Apply() {
	docs := staticDocs{
		"config.json": {
			"model_name":   "demo",
			"length_scale": json.Number("0.5"),
		},
	}

	bindings := registry.New()
	resolver := modules.NewResolver(bindings, logging.NewNop())
	if err := memlib.RegisterAll(resolver, docs, memlib.NewCheckpointStore()); err != nil {
		log.Fatal(err)
	}
	for _, name := range []string{"typesys", "fields", "config"} {
		if _, err := resolver.Load(name); err != nil {
			log.Fatal(err)
		}
	}

	shim := splint.New(resolver, splint.WithDocumentSource(docs), splint.WithLogger(logging.NewNop()))
	if err := shim.Apply(); err != nil {
		log.Fatal(err)
	}

	v, _ := bindings.Resolve("config.load")
	cfg, err := v.(ports.ConfigLoader).Load("config.json")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(cfg.Fields()["model_name"])
	fmt.Println(cfg.Fields()["length_scale"])
	// Output:
	// demo
	// 0.5
}
