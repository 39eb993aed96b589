package quizgen

// Config controls generation behavior.
type Config struct {
	// AssessmentTemperature is used for feasibility assessments. Kept low
	// so repeated assessments of the same standard stay consistent.
	AssessmentTemperature float64

	// QuestionTemperature is used for question generation. Higher for
	// variety across regenerations.
	QuestionTemperature float64

	// MaxTokens is the token budget for a single model response.
	MaxTokens int

	// DefaultCount is the number of questions a batch generates when the
	// caller doesn't say.
	DefaultCount int

	// TypeWeights orders the fallback question-type distribution used
	// when neither the caller nor the assessment suggests types.
	TypeWeights []TypeWeight
}

// TypeWeight pairs a question type with its share of an unconstrained
// batch.
type TypeWeight struct {
	Type   QuestionType
	Weight float64
}

// DefaultConfig returns the recommended defaults.
func DefaultConfig() Config {
	return Config{
		AssessmentTemperature: 0.3,
		QuestionTemperature:   0.7,
		MaxTokens:             1024,
		DefaultCount:          3,
		TypeWeights: []TypeWeight{
			{TypeMultipleChoice, 0.4},
			{TypeFillInBlank, 0.3},
			{TypeTrueFalse, 0.2},
			{TypeShortAnswer, 0.1},
		},
	}
}

// pickTypes chooses the question types for a batch of n questions.
// Preference order: caller-requested types, the assessment's suggested
// types, then the weighted default distribution. Selection is
// deterministic: types repeat in weight order, heaviest first.
func (c Config) pickTypes(n int, requested, suggested []QuestionType) []QuestionType {
	pool := requested
	if len(pool) == 0 {
		pool = suggested
	}
	if len(pool) == 0 {
		for _, tw := range c.TypeWeights {
			pool = append(pool, tw.Type)
		}
	}

	out := make([]QuestionType, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, pool[i%len(pool)])
	}
	return out
}
