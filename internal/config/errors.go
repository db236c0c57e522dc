package config

import "errors"

// ErrInvalidConfig is returned by [GetStructuredConfig] when the merged
// configuration breaks one of the `validate` tag rules. The wrapped message
// names the offending fields.
var ErrInvalidConfig = errors.New("invalid configuration")
