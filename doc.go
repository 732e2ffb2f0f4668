/*
Package splint is a runtime compatibility shim for applications embedding an
inference runtime whose installed version has drifted from the contract the
application expects.

Rather than vendoring or forking the library, splint intercepts a small,
fixed set of capability bindings at process start, coercing their behavior
back into the expected contract:

  - Predicate Guard: hardens the type-relationship predicate against
    non-type first arguments (returns false instead of failing).
  - Deserialization Fallback: degrades recognized "incompatible declared
    type" failures to "accept the raw value unchanged".
  - Config Load Retry: re-reads the raw config document and populates a
    fresh config object through the patched deserializer when the library's
    own loader chokes on a field type.
  - Checkpoint Load Trust Adapter: injects the permissive legacy trust flag
    when callers omit it, and registers the canonical config type with the
    secure-deserialization allow-list where that capability exists.

# Concept

Splint treats the external library as a set of named capability bindings
("module.attr") published through a module resolver. Patches wrap bindings
in place, guarded by idempotence markers: applying the shim twice yields the
same bindings as applying it once. Modules that are not loaded yet receive
their patches through a deferred hook the moment the host loads them.

# Usage

	resolver := modules.NewResolver(registry.New(), logger)
	resolver.Register("typesys", loadTypesys)   // host wiring
	resolver.Register("fields", loadFields)
	resolver.Register("config", loadConfig)
	resolver.Register("checkpoint", loadCheckpoint)

	_, _ = resolver.Load("typesys")
	_, _ = resolver.Load("fields")

	shim := splint.New(resolver)
	if err := shim.Apply(); err != nil {
		log.Fatal(err)
	}

	// From here, every consumer resolving "config.load" or
	// "checkpoint.load" observes the hardened implementations,
	// including modules loaded later.

Initialization is expected to happen once, early, before concurrent use of
the bindings begins; the shim does not synchronize concurrent Apply calls
against in-flight traffic.
*/
package splint
