package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithSetup sets a custom placement string.
func (b *ConfigBuilder) WithSetup(setup string) *ConfigBuilder {
	b.cfg.Setup = setup
	return b
}

// WithRules replaces all rule switches.
func (b *ConfigBuilder) WithRules(rules Rules) *ConfigBuilder {
	b.cfg.Rules = rules
	return b
}

// WithKingSafety enables or disables the own-king safety check.
func (b *ConfigBuilder) WithKingSafety(enabled bool) *ConfigBuilder {
	b.cfg.Rules.KingSafety = enabled
	return b
}

// WithCheckmateRule sets the checkmate search.
func (b *ConfigBuilder) WithCheckmateRule(rule CheckmateRule) *ConfigBuilder {
	b.cfg.Rules.Checkmate = rule
	return b
}

// WithStrictCastling enables the transit-square attack check.
func (b *ConfigBuilder) WithStrictCastling(enabled bool) *ConfigBuilder {
	b.cfg.Rules.StrictCastling = enabled
	return b
}

// WithStalemateDetection enables stalemate as a terminal state.
func (b *ConfigBuilder) WithStalemateDetection(enabled bool) *ConfigBuilder {
	b.cfg.Rules.DetectStalemate = enabled
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithDebug enables snapshot dumps.
func (b *ConfigBuilder) WithDebug(enabled bool) *ConfigBuilder {
	b.cfg.Debug = enabled
	return b
}

// WithDuplicateDetection reports replayed scripts that end in the same
// position, optionally only when the ply counts also agree.
func (b *ConfigBuilder) WithDuplicateDetection(matchPlies bool) *ConfigBuilder {
	b.cfg.Duplicate.Detect = true
	b.cfg.Duplicate.MatchPlies = matchPlies
	return b
}

// WithStopOnFailure ends a batch replay at the first rejected script.
func (b *ConfigBuilder) WithStopOnFailure(enabled bool) *ConfigBuilder {
	b.cfg.StopOnFailure = enabled
	return b
}
