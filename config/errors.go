package config

// ConfigurationError is the §7 "ConfigurationError" taxonomy member: a
// code plus a human-readable message, surfaced eagerly at config-load or
// problem-build time so the solver never starts against invalid input.
type ConfigurationError struct {
	Code    string
	Message string
}

// Error implements error.
func (e *ConfigurationError) Error() string {
	return e.Code + ": " + e.Message
}
