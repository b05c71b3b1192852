package config

import "github.com/samber/oops"

// Error codes for configuration failures.
const (
	CodeInvalidConfig = "INVALID_CONFIG"
	CodeLoadFailed    = "CONFIG_LOAD_FAILED"
)

func errInvalid(field string, value any, reason string) error {
	return oops.Code(CodeInvalidConfig).
		With("field", field).
		With("value", value).
		Errorf("invalid %s: %s", field, reason)
}

func errLoad(source string, err error) error {
	return oops.Code(CodeLoadFailed).
		With("source", source).
		Wrapf(err, "failed to load %s", source)
}
