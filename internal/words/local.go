package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"randnd/internal/phrase"

	"golang.org/x/sync/errgroup"
)

var errEmptyList = errors.New("word list is empty")

// LocalSource draws words from plain-text word lists, one word per line.
// Obscurity is ignored; the lists carry no rarity data.
type LocalSource struct {
	Files map[phrase.PartOfSpeech][]string
	Rand  Rand
}

func NewLocalSource(files map[phrase.PartOfSpeech][]string, rnd Rand) *LocalSource {
	if rnd == nil {
		rnd = DefaultRand()
	}
	return &LocalSource{Files: files, Rand: rnd}
}

func (s *LocalSource) GetWords(ctx context.Context, parts []phrase.Part) ([]string, error) {
	words := make([]string, 0, len(parts))
	for _, part := range parts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		word, err := s.word(part)
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	return words, nil
}

func (s *LocalSource) word(part phrase.Part) (string, error) {
	files := s.Files[part.Pos]
	if len(files) == 0 {
		return "", fmt.Errorf("%w: no word lists for %s", ErrConfiguration, part.Pos)
	}
	// Each file is equally likely regardless of its length.
	path := files[s.random().IntN(len(files))]

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	defer file.Close()

	line, err := RandomLine(file, s.random())
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrConfiguration, path, err)
	}
	word := strings.TrimSpace(line)
	if word == "" {
		return "", fmt.Errorf("%w: %s: blank word selected", ErrConfiguration, path)
	}
	if part.Title {
		word = phrase.Title(word)
	}
	return word, nil
}

func (s *LocalSource) random() Rand {
	if s.Rand == nil {
		return DefaultRand()
	}
	return s.Rand
}

// RandomLine returns a uniformly random line of r in a single pass.
// Line k replaces the current pick when rnd.IntN(k) == 0, which leaves every
// one of L lines chosen with probability 1/L.
func RandomLine(r io.Reader, rnd Rand) (string, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", errEmptyList
	}
	chosen := scanner.Text()
	for k := 2; scanner.Scan(); k++ {
		if rnd.IntN(k) != 0 {
			continue
		}
		chosen = scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return chosen, nil
}

// Check verifies that every part of speech used by parts has at least one
// word list and that each of those lists is readable, non-empty and free of
// blank lines.
func (s *LocalSource) Check(ctx context.Context, parts []phrase.Part) error {
	var paths []string
	seen := make(map[phrase.PartOfSpeech]struct{})
	for _, part := range parts {
		if _, ok := seen[part.Pos]; ok {
			continue
		}
		seen[part.Pos] = struct{}{}
		files := s.Files[part.Pos]
		if len(files) == 0 {
			return fmt.Errorf("%w: no word lists for %s", ErrConfiguration, part.Pos)
		}
		paths = append(paths, files...)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, path := range paths {
		g.Go(func() error {
			return checkWordList(ctx, path)
		})
	}
	return g.Wait()
}

func checkWordList(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	defer file.Close()
	// Any line may be drawn, so a single blank line makes the list unusable.
	scanner := bufio.NewScanner(file)
	lines := 0
	for scanner.Scan() {
		lines++
		if strings.TrimSpace(scanner.Text()) == "" {
			return fmt.Errorf("%w: %s:%d: blank line", ErrConfiguration, path, lines)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConfiguration, path, err)
	}
	if lines == 0 {
		return fmt.Errorf("%w: %s: %v", ErrConfiguration, path, errEmptyList)
	}
	return nil
}

// VerachellFiles maps each part of speech to the verachell word lists under
// base. Several lists per part mix sub-categories such as plural nouns and
// "-ment" nouns.
func VerachellFiles(base string) map[phrase.PartOfSpeech][]string {
	if base == "" {
		base = filepath.Join("wordlists", "verachell")
	}
	join := func(parts ...string) string {
		return filepath.Join(append([]string{base}, parts...)...)
	}
	return map[phrase.PartOfSpeech][]string{
		phrase.Noun: {
			join("nouns", "mostly-nouns-ment.txt"),
			join("nouns", "mostly-nouns.txt"),
			join("nouns", "mostly-plural-nouns.txt"),
		},
		phrase.Adjective: {
			join("other-categories", "mostly-adjectives.txt"),
		},
		phrase.TransitiveVerb: {
			join("verbs", "transitive-past-tense.txt"),
			join("verbs", "transitive-present-tense.txt"),
		},
		phrase.IntransitiveVerb: {
			join("verbs", "mostly-verbs-infinitive.txt"),
			join("verbs", "mostly-verbs-past-tense.txt"),
			join("verbs", "mostly-verbs-present-tense.txt"),
		},
		phrase.Adverb: {
			join("other-categories", "ly-adverbs.txt"),
			join("other-categories", "mostly-adverbs.txt"),
		},
		phrase.Interjection: {
			join("other-categories", "mostly-interjections.txt"),
		},
		phrase.Preposition: {
			join("other-categories", "mostly-prepositions.txt"),
		},
	}
}
