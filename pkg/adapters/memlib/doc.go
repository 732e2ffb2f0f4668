/*
Package memlib is a compact in-memory rendition of the inference-library
contract Splint is built against, pinned to the library version whose drift
the shim exists to paper over. Tests, examples and the doctor command run
the shim against it instead of a real installation.

The version-skew behaviors are deliberate and load-bearing:

  - the relation predicate fails on non-type first arguments instead of
    returning false;
  - the field deserializer predates union declarations ("float | [float]")
    and rejects them even when the value matches a member;
  - some shipped field declarations were never parsed into type values and
    surface as raw strings;
  - the checkpoint loader requires an explicit trust flag and refuses
    non-allow-listed types in restricted mode.

Do not "fix" these here; fixing them is the shim's job.
*/
package memlib
