package cli

import "codeberg.org/snonux/modelcheck/internal/models"

// Flags holds all command-line flag values
type Flags struct {
	CfgFile string
	EnvFile string
	Verbose bool

	// Listing flags
	Provider string
	BaseURL  string
	Method   string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		EnvFile:  ".env",
		Provider: models.ProviderGemini,
		Method:   models.GenerateContent,
	}
}
