package questions

// DefaultCount is the number of questions in a mock interview.
const DefaultCount = 10

// MaxCount bounds the question count a caller may request.
const MaxCount = 20

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Count is the number of questions requested per set.
	Count int

	// Validators run on every generated question, in order.
	Validators []Validator

	// MaxTokens is the token budget for the whole set.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the standard validator chain and defaults.
func DefaultConfig() Config {
	return Config{
		Count:       DefaultCount,
		Validators:  DefaultValidators(),
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// clampCount keeps a requested count within [1, MaxCount].
func clampCount(n int) int {
	switch {
	case n <= 0:
		return DefaultCount
	case n > MaxCount:
		return MaxCount
	}
	return n
}
