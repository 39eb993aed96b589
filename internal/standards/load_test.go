package standards

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleJSON = `{
	"total_documents": 2,
	"documents": [
		{
			"document": {
				"title": "Mathematics Standards",
				"course_name": "Mathematics",
				"grade_level": "Grade 4",
				"year": "2024",
				"strands": [
					{
						"code": "NS",
						"name": "Number Sense",
						"standards": [
							{
								"id": "4.NS.1",
								"statement": "Read and write whole numbers up to 1,000,000.",
								"knowledge_and_skills": {
									"objectives": [
										{"text": "Read numerals up to 1,000,000"},
										{"text": "Write numerals up to 1,000,000"}
									]
								}
							},
							{
								"id": "4.NS.2",
								"statement": "Compare and order whole numbers.",
								"knowledge_and_skills": {"objectives": []}
							}
						]
					}
				]
			}
		},
		{
			"document": {
				"title": "Science Standards",
				"course_name": "Science",
				"grade_level": "Grade 5",
				"year": "2024",
				"strands": [
					{
						"code": "PS",
						"name": "Physical Science",
						"standards": [
							{
								"id": "5.PS.1",
								"statement": "Describe states of matter.",
								"knowledge_and_skills": {
									"objectives": [{"text": "Identify solids, liquids, and gases"}]
								}
							}
						]
					}
				]
			}
		}
	]
}`

func TestParse(t *testing.T) {
	coll, err := Parse(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := coll.TotalDocuments(); got != 2 {
		t.Errorf("expected 2 documents, got %d", got)
	}
	if got := coll.TotalStandards(); got != 3 {
		t.Errorf("expected 3 standards, got %d", got)
	}

	std, err := coll.Get("4.NS.1")
	if err != nil {
		t.Fatalf("Get(4.NS.1): %v", err)
	}
	if std.Statement != "Read and write whole numbers up to 1,000,000." {
		t.Errorf("unexpected statement: %q", std.Statement)
	}
	if len(std.Objectives) != 2 {
		t.Errorf("expected 2 objectives, got %d", len(std.Objectives))
	}

	doc, err := coll.DocumentFor("5.PS.1")
	if err != nil {
		t.Fatalf("DocumentFor(5.PS.1): %v", err)
	}
	if doc.CourseName != "Science" {
		t.Errorf("expected Science document, got %q", doc.CourseName)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid JSON", `{not json`},
		{"missing documents array", `{"total_documents": 0}`},
		{"missing document object", `{"documents": [{}]}`},
		{"missing course_name", `{"documents": [{"document": {"grade_level": "Grade 4"}}]}`},
		{"missing grade_level", `{"documents": [{"document": {"course_name": "Math"}}]}`},
		{
			"missing standard id",
			`{"documents": [{"document": {"course_name": "Math", "grade_level": "Grade 4",
				"strands": [{"code": "NS", "name": "N", "standards": [{"statement": "x"}]}]}}]}`,
		},
		{
			"missing statement",
			`{"documents": [{"document": {"course_name": "Math", "grade_level": "Grade 4",
				"strands": [{"code": "NS", "name": "N", "standards": [{"id": "4.NS.1"}]}]}}]}`,
		},
		{
			"duplicate id in document",
			`{"documents": [{"document": {"course_name": "Math", "grade_level": "Grade 4",
				"strands": [{"code": "NS", "name": "N", "standards": [
					{"id": "4.NS.1", "statement": "a"},
					{"id": "4.NS.1", "statement": "b"}
				]}]}}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "standards.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	coll, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !coll.Has("4.NS.2") {
		t.Error("expected 4.NS.2 to be loaded")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var le *LoadError
	if !errors.As(err, &le) {
		t.Errorf("expected *LoadError, got %T", err)
	}
}

func TestGetUnknown(t *testing.T) {
	coll, err := Parse(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := coll.Get("9.XX.9"); err == nil {
		t.Error("expected error for unknown standard")
	}
}

func TestGradeGuidance(t *testing.T) {
	if !ValidGrade(GradeK) || !ValidGrade(GradeHigh) {
		t.Error("expected K and High School to be valid grades")
	}
	if ValidGrade("Grade 13") {
		t.Error("Grade 13 should not be valid")
	}

	kLen, kComplexity := GradeK.Guidance()
	hLen, hComplexity := GradeHigh.Guidance()
	if kLen >= hLen {
		t.Errorf("expected K sentence limit (%d) below high school (%d)", kLen, hLen)
	}
	if kComplexity != "very simple" || hComplexity != "advanced" {
		t.Errorf("unexpected complexity: K=%q, High=%q", kComplexity, hComplexity)
	}
}
