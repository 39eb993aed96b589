package standards

import (
	"fmt"
	"slices"
)

// Collection holds all loaded documents with an index by standard ID.
// Read-only after construction.
type Collection struct {
	docs  []Document
	byID  map[string]*Standard
	docOf map[string]int // standard ID -> index into docs
}

// newCollection builds the ID indices, rejecting duplicate standard IDs
// within a document. The same ID appearing in two different documents is
// allowed in the source material; the first occurrence wins the index.
func newCollection(docs []Document) (*Collection, error) {
	c := &Collection{
		docs:  docs,
		byID:  make(map[string]*Standard),
		docOf: make(map[string]int),
	}

	for di := range c.docs {
		seen := make(map[string]bool)
		for si := range c.docs[di].Strands {
			strand := &c.docs[di].Strands[si]
			for ti := range strand.Standards {
				std := &strand.Standards[ti]
				if seen[std.ID] {
					return nil, fmt.Errorf("document %q: duplicate standard id %q", c.docs[di].CourseName, std.ID)
				}
				seen[std.ID] = true
				if _, ok := c.byID[std.ID]; !ok {
					c.byID[std.ID] = std
					c.docOf[std.ID] = di
				}
			}
		}
	}

	return c, nil
}

// Get returns the standard with the given ID.
func (c *Collection) Get(id string) (Standard, error) {
	s, ok := c.byID[id]
	if !ok {
		return Standard{}, fmt.Errorf("standard not found: %q", id)
	}
	return *s, nil
}

// Has reports whether a standard with the given ID is loaded.
func (c *Collection) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// DocumentFor returns the document containing the given standard.
func (c *Collection) DocumentFor(id string) (Document, error) {
	di, ok := c.docOf[id]
	if !ok {
		return Document{}, fmt.Errorf("standard not found: %q", id)
	}
	return c.docs[di], nil
}

// Documents returns all loaded documents in file order.
func (c *Collection) Documents() []Document {
	return slices.Clone(c.docs)
}

// AllStandards returns every standard across all documents, in document
// then strand order.
func (c *Collection) AllStandards() []Standard {
	var out []Standard
	for _, doc := range c.docs {
		for _, strand := range doc.Strands {
			out = append(out, strand.Standards...)
		}
	}
	return out
}

// TotalDocuments returns the number of loaded documents.
func (c *Collection) TotalDocuments() int {
	return len(c.docs)
}

// TotalStandards returns the number of standards across all documents.
func (c *Collection) TotalStandards() int {
	n := 0
	for _, doc := range c.docs {
		for _, strand := range doc.Strands {
			n += len(strand.Standards)
		}
	}
	return n
}
