package memory

import "fmt"

// ConfigError reports an invalid device configuration.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("memory: invalid config %s: %s", e.Field, e.Reason)
}

// Config controls the capabilities the device reports. Restricting them is
// the way tests exercise every buffer write strategy of the renderer
// against one backend.
type Config struct {
	// SupportsMapRange enables partial-range mapping.
	SupportsMapRange bool

	// SupportsMap enables whole-buffer mapping.
	SupportsMap bool

	// MaxBufferSize caps individual buffer sizes in bytes. Zero means
	// unlimited.
	MaxBufferSize uint64
}

// DefaultConfig returns a fully capable device configuration.
func DefaultConfig() Config {
	return Config{
		SupportsMapRange: true,
		SupportsMap:      true,
	}
}

// Validate checks the configuration for contradictions.
// Range mapping is an extension of whole-buffer mapping, so a device
// cannot offer the former without the latter.
func (c Config) Validate() error {
	if c.SupportsMapRange && !c.SupportsMap {
		return &ConfigError{
			Field:  "SupportsMapRange",
			Reason: "range mapping requires whole-buffer mapping support",
		}
	}
	return nil
}
