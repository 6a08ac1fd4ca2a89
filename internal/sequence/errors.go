package sequence

import "errors"

// ErrInvalidArgument reports a graph or option the counter cannot work with.
var ErrInvalidArgument = errors.New("invalid argument")
