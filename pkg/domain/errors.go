package domain

import "errors"

// ErrTargetNotBound is returned when a patch is applied to a binding that
// does not exist in the registry.
var ErrTargetNotBound = errors.New("patch target not bound")

// ErrModuleNotRegistered is returned when a module name has no registered loader.
var ErrModuleNotRegistered = errors.New("module not registered")
