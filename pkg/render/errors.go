package render

import "errors"

// ErrRendererNotFound is wrapped by Registry.Get when no renderer is
// registered under the requested name.
var ErrRendererNotFound = errors.New("renderer not found")
