package config

// DuplicateConfig holds settings for duplicate detection in batch replay.
type DuplicateConfig struct {
	// Detect reports scripts that end in a position an earlier script reached
	Detect bool

	// MatchPlies also requires the same number of plies
	MatchPlies bool
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}
