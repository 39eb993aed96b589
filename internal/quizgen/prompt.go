package quizgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizforge/internal/standards"
)

const assessmentSystemPrompt = `You are an educational assessment expert specializing in creating age-appropriate quiz questions. You analyze learning standards and judge whether they can be meaningfully tested with text-only questions.`

const questionSystemPrompt = `You are an expert elementary and secondary education teacher who creates engaging, age-appropriate quiz questions.

Rules:
- The question must directly assess understanding of the given standard.
- Use vocabulary and sentence structure appropriate for the given grade level.
- For multiple choice: provide exactly 4 options with exactly one correct answer. Distractors should reflect plausible mistakes, not random values.
- For fill in blank: indicate the blank with _____.
- For true/false: the correct answer is "True" or "False".
- Include a brief explanation of why the answer is correct.
- Rate difficulty as easy, medium, or hard.`

// BuildFeasibilityPrompt renders the user message asking the model whether
// a standard can be assessed with text-based questions. Deterministic for
// identical inputs; no side effects.
func BuildFeasibilityPrompt(std standards.Standard, grade standards.GradeLevel) (string, error) {
	if !standards.ValidGrade(grade) {
		return "", &ConfigError{Field: "grade level", Value: string(grade)}
	}

	var b strings.Builder

	b.WriteString("Analyze the following educational standard and determine if it can be assessed using text-based quiz questions.\n\n")
	fmt.Fprintf(&b, "Grade Level: %s\n", grade)
	fmt.Fprintf(&b, "Standard ID: %s\n", std.ID)
	fmt.Fprintf(&b, "Standard Statement: %s\n", std.Statement)

	b.WriteString("\nObjectives:\n")
	b.WriteString(formatObjectives(std.Objectives))

	b.WriteString(`
Analyze:
1. Can this standard be assessed via text-based questions? (feasible, partially_feasible, or not_feasible)
2. Why or why not?
3. Which question types would work best? (multiple_choice, fill_in_blank, true_false, short_answer)
4. Does this require visual aids or diagrams?
5. Does this require hands-on physical activities?

Respond with a JSON object containing: feasibility, reasoning, suggested_question_types, requires_visual_aids, requires_hands_on.`)

	return b.String(), nil
}

// BuildQuestionPrompt renders the user message asking the model to create
// one question of the given type. When objective is non-empty the question
// focuses on that single objective; otherwise all objectives are included.
func BuildQuestionPrompt(std standards.Standard, grade standards.GradeLevel, qtype QuestionType, objective string) (string, error) {
	if !standards.ValidGrade(grade) {
		return "", &ConfigError{Field: "grade level", Value: string(grade)}
	}
	if _, err := ParseQuestionType(string(qtype)); err != nil {
		return "", &ConfigError{Field: "question type", Value: string(qtype)}
	}

	maxLen, complexity := grade.Guidance()

	var b strings.Builder

	b.WriteString("Create an age-appropriate quiz question for the following educational standard.\n\n")
	fmt.Fprintf(&b, "Grade Level: %s\n", grade)
	fmt.Fprintf(&b, "Standard ID: %s\n", std.ID)
	fmt.Fprintf(&b, "Standard Statement: %s\n", std.Statement)

	if objective != "" {
		fmt.Fprintf(&b, "Focus Objective: %s\n", objective)
	} else if len(std.Objectives) > 0 {
		b.WriteString("\nObjectives:\n")
		b.WriteString(formatObjectives(std.Objectives))
	}

	fmt.Fprintf(&b, "\nQuestion Type: %s\n", qtype)
	fmt.Fprintf(&b, "Language: %s vocabulary, sentences of at most %d words\n", complexity, maxLen)

	b.WriteString(`
Respond with a JSON object containing: question_text, correct_answer, options (exactly 4 strings for multiple_choice, empty array otherwise), explanation, difficulty_level.`)

	return b.String(), nil
}

// formatObjectives renders objectives as a numbered list, or "None".
func formatObjectives(objectives []string) string {
	if len(objectives) == 0 {
		return "None\n"
	}
	var b strings.Builder
	for i, obj := range objectives {
		fmt.Fprintf(&b, "%d. %s\n", i+1, obj)
	}
	return b.String()
}
