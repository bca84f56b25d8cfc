package compose

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Placement is a reference to a glyph definition at a position.
// Coordinates and advance are in font units; they are scaled on output.
type Placement struct {
	GlyphID string
	X, Y    float64
	Advance float64
}

// Document is the result of a render: glyph definitions in first-seen order,
// placements in call order and the viewport enclosing all placements.
//
// A Document is not safe for concurrent use.
type Document struct {
	TestCase    string   // prefix of symbol identifiers
	Scale       float64  // font units to output units
	Viewport    Viewport // set when rendering is complete
	Warnings    []error  // non-fatal conditions, e.g. ErrEmptyInput
	definitions *linkedhashmap.Map
	placements  []Placement
}

// NewDocument creates an empty document.
func NewDocument(testcase string, scale float64) *Document {
	return &Document{
		TestCase:    testcase,
		Scale:       scale,
		definitions: linkedhashmap.New(),
	}
}

// Define adds normalized path data for a glyph identifier. If the identifier is
// already defined, the document is left unchanged and Define returns false.
func (doc *Document) Define(id string, pathdata string) bool {
	if _, found := doc.definitions.Get(id); found {
		return false
	}
	doc.definitions.Put(id, pathdata)
	return true
}

// Defined is a predicate: has a glyph identifier been defined yet?
func (doc *Document) Defined(id string) bool {
	_, found := doc.definitions.Get(id)
	return found
}

// Definition returns the path data defined for a glyph identifier.
func (doc *Document) Definition(id string) (string, bool) {
	d, found := doc.definitions.Get(id)
	if !found {
		return "", false
	}
	return d.(string), true
}

// DefinitionIDs returns the identifiers of all definitions, in first-seen order.
func (doc *Document) DefinitionIDs() []string {
	ids := make([]string, 0, doc.definitions.Size())
	for _, k := range doc.definitions.Keys() {
		ids = append(ids, k.(string))
	}
	return ids
}

// EachDefinition calls f for every definition, in first-seen order.
func (doc *Document) EachDefinition(f func(id, pathdata string)) {
	it := doc.definitions.Iterator()
	for it.Next() {
		f(it.Key().(string), it.Value().(string))
	}
}

// Place appends a placement.
func (doc *Document) Place(p Placement) {
	doc.placements = append(doc.placements, p)
}

// Placements returns all placements, in call order.
func (doc *Document) Placements() []Placement {
	return doc.placements
}

// Empty is a predicate: does the document contain no placements?
func (doc *Document) Empty() bool {
	return len(doc.placements) == 0
}
