package ports

// Config is the library's configuration object.
type Config interface {
	// Populate assigns fields from a raw mapping, routing every field value
	// through the given deserializer before assignment.
	Populate(doc map[string]any, d FieldDeserializer) error

	// Fields returns the populated field values.
	Fields() map[string]any
}

// ConfigFactory constructs empty canonical config objects.
type ConfigFactory interface {
	NewConfig() Config
}

// ConfigLoader is the library's top-level configuration loading entry point.
type ConfigLoader interface {
	// Load reads and deserializes the config document at path.
	Load(path string) (Config, error)
}

// DocumentSource reads a raw configuration document as a generic mapping.
// The manual reload path depends on it to re-read what the loader could not
// deserialize. Numeric values should be preserved exactly (json.Number).
type DocumentSource interface {
	GetDocument(path string) (map[string]any, error)
}
