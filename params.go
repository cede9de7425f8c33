package thermalctl

import "github.com/merritt-h/thermalctl/types"

// Params is an alias for types.Params: component code throughout this
// package (predict, adapt, postProcess, ...) operates on configuration
// values without needing to import types directly.
type Params = types.Params
