package standards

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadError indicates the standards file could not be parsed into the
// expected document hierarchy. A failed load never corrupts state already
// held by the caller.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("load standards from %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("load standards: %v", e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Wire format of all_structured_documents.json. The file nests each
// document under a "document" wrapper and objectives under
// knowledge_and_skills, so the wire types are kept separate from the
// in-memory model.
type fileRoot struct {
	TotalDocuments int           `json:"total_documents"`
	Documents      []fileDocWrap `json:"documents"`
}

type fileDocWrap struct {
	Document *fileDocument `json:"document"`
}

type fileDocument struct {
	Title      string       `json:"title"`
	CourseName string       `json:"course_name"`
	GradeLevel string       `json:"grade_level"`
	Year       string       `json:"year"`
	Strands    []fileStrand `json:"strands"`
}

type fileStrand struct {
	Code      string         `json:"code"`
	Name      string         `json:"name"`
	Standards []fileStandard `json:"standards"`
}

type fileStandard struct {
	ID                 string `json:"id"`
	Statement          string `json:"statement"`
	KnowledgeAndSkills struct {
		Objectives []fileObjective `json:"objectives"`
	} `json:"knowledge_and_skills"`
}

type fileObjective struct {
	Text string `json:"text"`
}

// Load reads a structured documents file from disk into a Collection.
func Load(path string) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return c, nil
}

// Parse reads the documents JSON from r and builds a Collection.
func Parse(r io.Reader) (*Collection, error) {
	var root fileRoot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if root.Documents == nil {
		return nil, fmt.Errorf(`missing "documents" array`)
	}

	docs := make([]Document, 0, len(root.Documents))
	for i, wrap := range root.Documents {
		if wrap.Document == nil {
			return nil, fmt.Errorf(`documents[%d]: missing "document" object`, i)
		}
		doc, err := convertDocument(wrap.Document)
		if err != nil {
			return nil, fmt.Errorf("documents[%d]: %w", i, err)
		}
		docs = append(docs, doc)
	}

	return newCollection(docs)
}

func convertDocument(fd *fileDocument) (Document, error) {
	if fd.CourseName == "" {
		return Document{}, fmt.Errorf(`missing "course_name"`)
	}
	if fd.GradeLevel == "" {
		return Document{}, fmt.Errorf(`missing "grade_level"`)
	}

	doc := Document{
		Title:      fd.Title,
		CourseName: fd.CourseName,
		GradeLevel: fd.GradeLevel,
		Year:       fd.Year,
		Strands:    make([]Strand, 0, len(fd.Strands)),
	}

	for si, fs := range fd.Strands {
		strand := Strand{
			Code:      fs.Code,
			Name:      fs.Name,
			Standards: make([]Standard, 0, len(fs.Standards)),
		}
		for ti, fstd := range fs.Standards {
			if fstd.ID == "" {
				return Document{}, fmt.Errorf("strands[%d].standards[%d]: missing \"id\"", si, ti)
			}
			if fstd.Statement == "" {
				return Document{}, fmt.Errorf("standard %s: missing \"statement\"", fstd.ID)
			}
			std := Standard{
				ID:        fstd.ID,
				Statement: fstd.Statement,
			}
			for _, obj := range fstd.KnowledgeAndSkills.Objectives {
				if obj.Text != "" {
					std.Objectives = append(std.Objectives, obj.Text)
				}
			}
			strand.Standards = append(strand.Standards, std)
		}
		doc.Strands = append(doc.Strands, strand)
	}

	return doc, nil
}
