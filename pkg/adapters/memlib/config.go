package memlib

import (
	"fmt"

	"github.com/aretw0/splint/pkg/ports"
	"github.com/aretw0/splint/pkg/schema"
	"github.com/mitchellh/mapstructure"
)

// ModelSettings is the typed view of the canonical config fields.
// Temperature and LengthScale stay untyped: their declarations are
// "float | [float]" and a populated config may hold either shape.
type ModelSettings struct {
	ModelName   string   `mapstructure:"model_name"`
	SampleRate  int      `mapstructure:"sample_rate"`
	UseCuda     bool     `mapstructure:"use_cuda"`
	Speakers    []string `mapstructure:"speakers"`
	Temperature any      `mapstructure:"temperature"`
	LengthScale any      `mapstructure:"length_scale"`
}

// DefaultDeclarations returns the field declarations exactly as the pinned
// library version ships them. "temperature" carries a union type the
// deserializer rejects; "length_scale" was never parsed into a type value
// at all and surfaces as its raw declaration string.
func DefaultDeclarations() map[string]any {
	return map[string]any{
		"model_name":   schema.String(),
		"sample_rate":  schema.Int(),
		"use_cuda":     schema.Bool(),
		"speakers":     schema.Slice(schema.String()),
		"temperature":  schema.Union(schema.Float(), schema.Slice(schema.Float())),
		"length_scale": "float | [float]",
	}
}

// BaseConfig is the canonical configuration object.
// It satisfies ports.Config: construct empty, populate from a mapping.
type BaseConfig struct {
	decls  map[string]any
	values map[string]any
	view   ModelSettings
}

// NewBaseConfig constructs an empty canonical config.
func NewBaseConfig() *BaseConfig {
	return &BaseConfig{
		decls:  DefaultDeclarations(),
		values: make(map[string]any),
	}
}

// Populate assigns fields from doc, routing every declared field through d.
// Fields without a declaration are stored raw; drifted configs routinely
// carry fields this version knows nothing about.
func (c *BaseConfig) Populate(doc map[string]any, d ports.FieldDeserializer) error {
	for key, raw := range doc {
		decl, ok := c.decls[key]
		if !ok {
			c.values[key] = raw
			continue
		}
		v, err := d.Deserialize(raw, decl)
		if err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		c.values[key] = v
	}
	return c.refreshView()
}

// Fields returns a copy of the populated field values.
func (c *BaseConfig) Fields() map[string]any {
	out := make(map[string]any, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// Settings returns the typed view of the canonical fields.
func (c *BaseConfig) Settings() ModelSettings {
	return c.view
}

// refreshView decodes the value mapping into the typed view. Weak typing
// lets json.Number values land in int and bool fields without ceremony.
func (c *BaseConfig) refreshView() error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &c.view,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(c.values); err != nil {
		return fmt.Errorf("decode config mapping: %w", err)
	}
	return nil
}

// Factory constructs empty canonical configs; the "new" export of the
// config module.
type Factory struct{}

// NewConfig implements ports.ConfigFactory.
func (Factory) NewConfig() ports.Config {
	return NewBaseConfig()
}

// ConfigLoader is the library's top-level config loading entry point.
// It populates through the library's own deserializer reference, captured
// at construction — patches on the binding registry do not reach it, which
// is precisely why the shim wraps Load rather than the internals.
type ConfigLoader struct {
	docs         ports.DocumentSource
	deserializer ports.FieldDeserializer
}

// NewConfigLoader creates the config loader.
func NewConfigLoader(docs ports.DocumentSource, d ports.FieldDeserializer) *ConfigLoader {
	return &ConfigLoader{docs: docs, deserializer: d}
}

// Load reads and deserializes the config document at path.
func (l *ConfigLoader) Load(path string) (ports.Config, error) {
	doc, err := l.docs.GetDocument(path)
	if err != nil {
		return nil, err
	}
	cfg := NewBaseConfig()
	if err := cfg.Populate(doc, l.deserializer); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
