/*
Package ports defines the driven ports (interfaces) for the Splint shim.

These interfaces are the shim's points of contact with the external inference
and schema libraries. Splint does not reimplement those libraries; it wraps
implementations of these contracts, so any library version can be adapted by
satisfying them.

# Key Interfaces

  - RelationPredicate: the type-relationship predicate ("is A a subtype of B").
  - FieldDeserializer: single-value coercion against a declared field type.
  - ConfigLoader / ConfigFactory / Config: the configuration object model.
  - CheckpointLoader: the tensor-checkpoint loading entry point.
  - AllowlistRegistrar: optional secure-deserialization allow-list capability.
  - DocumentSource: raw structured-text access for the manual reload path.
*/
package ports
