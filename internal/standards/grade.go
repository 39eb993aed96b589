package standards

// GradeLevel is the closed set of grade levels documents may carry.
type GradeLevel string

const (
	GradeK      GradeLevel = "K"
	Grade1      GradeLevel = "Grade 1"
	Grade2      GradeLevel = "Grade 2"
	Grade3      GradeLevel = "Grade 3"
	Grade4      GradeLevel = "Grade 4"
	Grade5      GradeLevel = "Grade 5"
	Grade6      GradeLevel = "Grade 6"
	Grade7      GradeLevel = "Grade 7"
	Grade8      GradeLevel = "Grade 8"
	GradeHigh   GradeLevel = "High School"
)

// AllGradeLevels returns the grade levels in ascending order.
func AllGradeLevels() []GradeLevel {
	return []GradeLevel{
		GradeK, Grade1, Grade2, Grade3, Grade4,
		Grade5, Grade6, Grade7, Grade8, GradeHigh,
	}
}

// gradeGuidance controls vocabulary complexity per grade when prompting.
type gradeGuidance struct {
	MaxSentenceLength int
	Complexity        string
}

var gradeGuidanceTable = map[GradeLevel]gradeGuidance{
	GradeK:    {8, "very simple"},
	Grade1:    {10, "simple"},
	Grade2:    {12, "simple"},
	Grade3:    {15, "moderate"},
	Grade4:    {18, "moderate"},
	Grade5:    {20, "moderate"},
	Grade6:    {22, "moderate"},
	Grade7:    {25, "advanced"},
	Grade8:    {25, "advanced"},
	GradeHigh: {30, "advanced"},
}

// ValidGrade reports whether g is one of the enumerated grade levels.
func ValidGrade(g GradeLevel) bool {
	_, ok := gradeGuidanceTable[g]
	return ok
}

// Guidance returns the prompt guidance for a grade level.
// Callers must check ValidGrade first; unknown grades get Grade 5 guidance.
func (g GradeLevel) Guidance() (maxSentenceLength int, complexity string) {
	gd, ok := gradeGuidanceTable[g]
	if !ok {
		gd = gradeGuidanceTable[Grade5]
	}
	return gd.MaxSentenceLength, gd.Complexity
}
