package config

// Built-in session parameters, used when no profile overrides them.
const (
	DefaultIterations = 3
	DefaultAttempts   = 3
	DefaultPrompt     = "Enter an integer: "
)

// Model is the unified, format-agnostic representation of everything a
// profile source can configure.
type Model struct {
	Profile *Profile
}

// Profile holds the resolved parameters for one addition session.
type Profile struct {
	// Iterations is the number of rounds the session runs.
	Iterations int
	// Attempts is the validation retry budget granted to each input slot.
	Attempts int
	// Prompt is printed before every operand read, without a trailing
	// newline.
	Prompt string
}

// DefaultProfile returns a profile populated with the built-in defaults.
func DefaultProfile() *Profile {
	return &Profile{
		Iterations: DefaultIterations,
		Attempts:   DefaultAttempts,
		Prompt:     DefaultPrompt,
	}
}
