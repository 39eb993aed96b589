package standards

// Document is a single standards document (one course at one grade level).
// Documents are immutable after load.
type Document struct {
	Title      string
	CourseName string
	GradeLevel string
	Year       string
	Strands    []Strand
}

// Strand groups related standards within a document.
type Strand struct {
	Code      string
	Name      string
	Standards []Standard
}

// Standard is a single learning objective statement identified by a short
// code (e.g. "1.NS.1"). Identity is the ID; standards are never mutated.
type Standard struct {
	ID         string
	Statement  string
	Objectives []string
}

// DocumentInfo is the document header carried alongside bank entries and
// export files. It identifies which document a standard came from without
// dragging the full strand tree along.
type DocumentInfo struct {
	Title      string `json:"title"`
	GradeLevel string `json:"grade_level"`
	CourseName string `json:"course_name"`
	Year       string `json:"year"`
}

// Info returns the document's header.
func (d Document) Info() DocumentInfo {
	return DocumentInfo{
		Title:      d.Title,
		GradeLevel: d.GradeLevel,
		CourseName: d.CourseName,
		Year:       d.Year,
	}
}

// Key returns a stable identifier for grouping bank entries by document.
func (i DocumentInfo) Key() string {
	return i.CourseName + "_" + i.GradeLevel
}
