// Package tour runs the ordered collection demonstrations: sequences, a
// tagged union, UTF-8 text, maps and word frequency. Steps run top to bottom
// and share no state; each one records labelled observations that the Runner
// prints as text or collects into a JSON/YAML report.
package tour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"collectiontour/internal/logging"
)

// ErrUnknownStep is returned when a step reference matches no step.
var ErrUnknownStep = errors.New("unknown step")

// Step is one self-contained demonstration.
type Step struct {
	ID       int
	Slug     string
	Title    string
	Category logging.Category
	Notes    string // markdown commentary

	run func(e *Env) error
}

// Steps returns every step in execution order.
func Steps() []Step {
	return []Step{
		{ID: 1, Slug: "vectors", Title: "Creating and growing sequences", Category: logging.CategorySequence, Notes: notesVectors, run: stepVectors},
		{ID: 2, Slug: "scope", Title: "Scoped sequences", Category: logging.CategorySequence, Notes: notesScope, run: stepScope},
		{ID: 3, Slug: "access", Title: "Indexing and optional lookup", Category: logging.CategorySequence, Notes: notesAccess, run: stepAccess},
		{ID: 4, Slug: "iterate", Title: "Read-only and in-place iteration", Category: logging.CategorySequence, Notes: notesIterate, run: stepIterate},
		{ID: 5, Slug: "cells", Title: "Mixed values through a tagged union", Category: logging.CategorySequence, Notes: notesCells, run: stepCells},
		{ID: 6, Slug: "strings", Title: "Building UTF-8 text", Category: logging.CategoryText, Notes: notesStrings, run: stepStrings},
		{ID: 7, Slug: "push", Title: "Appending to a text buffer", Category: logging.CategoryText, Notes: notesPush, run: stepPush},
		{ID: 8, Slug: "concat", Title: "Consuming and borrowing concatenation", Category: logging.CategoryText, Notes: notesConcat, run: stepConcat},
		{ID: 9, Slug: "slicing", Title: "Byte ranges and character iteration", Category: logging.CategoryText, Notes: notesSlicing, run: stepSlicing},
		{ID: 10, Slug: "maps", Title: "Building maps", Category: logging.CategoryMapping, Notes: notesMaps, run: stepMaps},
		{ID: 11, Slug: "entries", Title: "Lookup, overwrite and insert-if-absent", Category: logging.CategoryMapping, Notes: notesEntries, run: stepEntries},
		{ID: 12, Slug: "wordfreq", Title: "Counting words", Category: logging.CategoryWordFreq, Notes: notesWordFreq, run: stepWordFreq},
	}
}

// Lookup finds a step by numeric ID or slug.
func Lookup(ref string) (Step, error) {
	ref = strings.TrimSpace(strings.ToLower(ref))
	id, convErr := strconv.Atoi(ref)
	for _, s := range Steps() {
		if (convErr == nil && s.ID == id) || s.Slug == ref {
			return s, nil
		}
	}
	return Step{}, fmt.Errorf("%w: %q", ErrUnknownStep, ref)
}

// Select returns the steps whose IDs are listed, in execution order. An empty
// list selects every step.
func Select(ids []int) ([]Step, error) {
	all := Steps()
	if len(ids) == 0 {
		return all, nil
	}
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []Step
	for _, s := range all {
		if want[s.ID] {
			out = append(out, s)
			delete(want, s.ID)
		}
	}
	for id := range want {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStep, id)
	}
	return out, nil
}
