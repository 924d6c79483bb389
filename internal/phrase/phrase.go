package phrase

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slot marks a positional substitution point in a phrase template.
const Slot = "{}"

var ErrTemplateMismatch = errors.New("template slot count does not match part count")

// Part requests one word: its part of speech, how rare it should be and
// whether it is title-cased before substitution.
type Part struct {
	Pos       PartOfSpeech
	Obscurity Obscurity
	Title     bool
}

// NewPart returns a title-cased part.
func NewPart(pos PartOfSpeech, obscurity Obscurity) Part {
	return Part{Pos: pos, Obscurity: obscurity, Title: true}
}

// Untitled returns a copy of the part that keeps the word's original casing.
func (p Part) Untitled() Part {
	p.Title = false
	return p
}

// Phrase is a template with one slot per part. Phrases are built once and
// never modified; Parts must not be mutated by callers.
type Phrase struct {
	Name     string
	Parts    []Part
	Template string
}

func New(name, template string, parts ...Part) (Phrase, error) {
	if slots := strings.Count(template, Slot); slots != len(parts) {
		return Phrase{}, fmt.Errorf("phrase %q: %w (slots=%d parts=%d)", name, ErrTemplateMismatch, slots, len(parts))
	}
	return Phrase{
		Name:     name,
		Parts:    append([]Part(nil), parts...),
		Template: template,
	}, nil
}

// MustNew is New for package-level definitions.
func MustNew(name, template string, parts ...Part) Phrase {
	p, err := New(name, template, parts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Render substitutes words[i] into the i-th slot of the template.
func (p Phrase) Render(words []string) (string, error) {
	pieces := strings.Split(p.Template, Slot)
	if len(pieces)-1 != len(words) {
		return "", fmt.Errorf("phrase %q: %w (slots=%d words=%d)", p.Name, ErrTemplateMismatch, len(pieces)-1, len(words))
	}
	var b strings.Builder
	for i, piece := range pieces {
		b.WriteString(piece)
		if i < len(words) {
			b.WriteString(words[i])
		}
	}
	return b.String(), nil
}

// Title capitalizes the first letter of each word and lowercases the rest.
func Title(s string) string {
	// Casers keep state between calls and cannot be shared across goroutines.
	return cases.Title(language.English).String(s)
}

type PartConfig struct {
	Pos       string `json:"pos"`
	Obscurity int    `json:"obscurity"`
	Title     bool   `json:"title"`
}

type Config struct {
	Parts    []PartConfig `json:"parts"`
	Template string       `json:"template"`
}

// Config describes the phrase the way API clients see it.
func (p Phrase) Config() Config {
	parts := make([]PartConfig, 0, len(p.Parts))
	for _, part := range p.Parts {
		parts = append(parts, PartConfig{
			Pos:       part.Pos.Code(),
			Obscurity: int(part.Obscurity),
			Title:     part.Title,
		})
	}
	return Config{Parts: parts, Template: p.Template}
}
