package plan

import (
	"protofield-generator/internal/attr"
)

// Config holds configuration for the resolution process.
type Config struct {
	// TagKey is the struct tag key holding field annotations.
	TagKey string
	// Include lists type name glob patterns to plan; empty means all types.
	Include []string
	// Exclude lists type name glob patterns to skip.
	Exclude []string
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() Config {
	return Config{
		TagKey: attr.DefaultKey,
	}
}
