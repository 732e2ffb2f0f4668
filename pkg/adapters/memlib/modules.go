package memlib

import (
	"github.com/aretw0/splint/pkg/modules"
	"github.com/aretw0/splint/pkg/ports"
)

// TypesysModule packages the relation predicate as the "typesys" module.
func TypesysModule() *modules.Module {
	return &modules.Module{
		Name:    "typesys",
		Exports: map[string]any{"related": NewPredicate()},
	}
}

// FieldsModule packages the field deserializer as the "fields" module.
func FieldsModule() *modules.Module {
	return &modules.Module{
		Name:    "fields",
		Exports: map[string]any{"deserialize": NewDeserializer()},
	}
}

// ConfigModule packages the config loader and factory as the "config" module.
func ConfigModule(docs ports.DocumentSource) *modules.Module {
	return &modules.Module{
		Name: "config",
		Exports: map[string]any{
			"load": NewConfigLoader(docs, NewDeserializer()),
			"new":  Factory{},
		},
	}
}

// CheckpointModule packages a checkpoint store as the "checkpoint" module.
// The store doubles as the allow-list registrar.
func CheckpointModule(store *CheckpointStore) *modules.Module {
	return &modules.Module{
		Name: "checkpoint",
		Exports: map[string]any{
			"load":      store,
			"allowlist": store,
		},
	}
}

// RegisterAll registers every memlib module with the resolver.
// Modules load lazily; callers decide which ones to load before the shim
// initializes and which to leave for the deferred hook.
func RegisterAll(r *modules.Resolver, docs ports.DocumentSource, store *CheckpointStore) error {
	if err := r.Register("typesys", func() (*modules.Module, error) { return TypesysModule(), nil }); err != nil {
		return err
	}
	if err := r.Register("fields", func() (*modules.Module, error) { return FieldsModule(), nil }); err != nil {
		return err
	}
	if err := r.Register("config", func() (*modules.Module, error) { return ConfigModule(docs), nil }); err != nil {
		return err
	}
	return r.Register("checkpoint", func() (*modules.Module, error) { return CheckpointModule(store), nil })
}
