package config

// OutputFormat represents how the CLI prints the board.
type OutputFormat int

const (
	TextFormat OutputFormat = iota // Character grid
	JSONFormat                     // Snapshot as JSON
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects text or JSON board output.
	Format OutputFormat

	// ShowCaptured appends the list of captured pieces to text output.
	ShowCaptured bool

	// ShowCoordinates prints file letters and rank numbers around the grid.
	ShowCoordinates bool

	// EmptySquare is the character drawn for an empty square.
	EmptySquare byte

	// MaxLineLength wraps move history lines.
	MaxLineLength uint
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          TextFormat,
		ShowCaptured:    true,
		ShowCoordinates: true,
		EmptySquare:     '_',
		MaxLineLength:   80,
	}
}
