package render

import (
	"context"
	"fmt"

	"randnd/internal/phrase"
	"randnd/internal/words"
)

type Result struct {
	Text  string
	Words []string
}

// Render fills p with words from src. Words holds the source's words before
// the renderer's own casing pass. Title-cased parts are cased here even when
// the source already did so.
func Render(ctx context.Context, p phrase.Phrase, src words.Source) (Result, error) {
	raw, err := src.GetWords(ctx, p.Parts)
	if err != nil {
		return Result{}, fmt.Errorf("render %s: %w", p.Name, err)
	}
	if len(raw) != len(p.Parts) {
		return Result{}, fmt.Errorf("render %s: %w: requested %d, got %d", p.Name, words.ErrWordCountMismatch, len(p.Parts), len(raw))
	}
	cased := make([]string, len(raw))
	for i, word := range raw {
		if p.Parts[i].Title {
			word = phrase.Title(word)
		}
		cased[i] = word
	}
	text, err := p.Render(cased)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: text, Words: raw}, nil
}
