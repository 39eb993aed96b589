package bank

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/abhisek/quizforge/internal/standards"
)

// exportFile is the top-level shape of an exported bank.
type exportFile struct {
	ExportDate     string           `json:"export_date"`
	TotalDocuments int              `json:"total_documents"`
	Documents      []exportDocument `json:"documents"`
}

// exportDocument groups banked standards under their source document.
type exportDocument struct {
	DocumentInfo standards.DocumentInfo `json:"document_info"`
	Standards    []exportStandard       `json:"standards"`
}

type exportStandard struct {
	StandardID string              `json:"standard_id"`
	Assessment *quizgen.Assessment `json:"assessment,omitempty"`
	Questions  []quizgen.Question  `json:"questions"`
}

// Export writes the bank to w as indented JSON, grouping entries by
// their source document. Document and entry order follow insertion
// order.
func (b *Bank) Export(w io.Writer) error {
	entries := b.Entries()

	var docs []exportDocument
	index := make(map[string]int)

	for _, e := range entries {
		key := e.Document.Key()
		i, ok := index[key]
		if !ok {
			i = len(docs)
			index[key] = i
			docs = append(docs, exportDocument{DocumentInfo: e.Document})
		}

		questions := e.Questions
		if questions == nil {
			questions = []quizgen.Question{}
		}
		docs[i].Standards = append(docs[i].Standards, exportStandard{
			StandardID: e.StandardID,
			Assessment: e.Assessment,
			Questions:  questions,
		})
	}

	if docs == nil {
		docs = []exportDocument{}
	}

	out := exportFile{
		ExportDate:     time.Now().UTC().Format(time.RFC3339),
		TotalDocuments: len(docs),
		Documents:      docs,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode bank export: %w", err)
	}
	return nil
}

// ExportFile writes the bank to the file at path.
func (b *Bank) ExportFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := b.Export(f); err != nil {
		return err
	}
	return f.Close()
}
