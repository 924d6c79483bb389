package phrase

import (
	"fmt"
	"strings"
)

type PartOfSpeech int

const (
	Noun PartOfSpeech = iota + 1
	Adjective
	TransitiveVerb
	IntransitiveVerb
	Adverb
	Interjection
	Preposition
)

var partsOfSpeech = []PartOfSpeech{
	Noun,
	Adjective,
	TransitiveVerb,
	IntransitiveVerb,
	Adverb,
	Interjection,
	Preposition,
}

// Code returns the single-letter identifier used by the remote word generator.
func (p PartOfSpeech) Code() string {
	switch p {
	case Noun:
		return "n"
	case Adjective:
		return "a"
	case TransitiveVerb:
		return "t"
	case IntransitiveVerb:
		return "i"
	case Adverb:
		return "e"
	case Interjection:
		return "z"
	case Preposition:
		return "s"
	}
	return ""
}

func (p PartOfSpeech) String() string {
	switch p {
	case Noun:
		return "noun"
	case Adjective:
		return "adjective"
	case TransitiveVerb:
		return "transitive-verb"
	case IntransitiveVerb:
		return "intransitive-verb"
	case Adverb:
		return "adverb"
	case Interjection:
		return "interjection"
	case Preposition:
		return "preposition"
	}
	return fmt.Sprintf("PartOfSpeech(%d)", int(p))
}

// PartsOfSpeech returns every part of speech in declaration order.
func PartsOfSpeech() []PartOfSpeech {
	return append([]PartOfSpeech(nil), partsOfSpeech...)
}

// ParsePartOfSpeech accepts either the remote code ("n") or the name ("noun").
func ParsePartOfSpeech(raw string) (PartOfSpeech, error) {
	clean := strings.ToLower(strings.TrimSpace(raw))
	for _, pos := range partsOfSpeech {
		if clean == pos.Code() || clean == pos.String() {
			return pos, nil
		}
	}
	return 0, fmt.Errorf("unknown part of speech %q", raw)
}

// Obscurity is a rarity level understood by the remote word generator.
// Higher is rarer.
type Obscurity int

const (
	VeryCommon       Obscurity = 10
	Common           Obscurity = 20
	Average          Obscurity = 35
	SomewhatUncommon Obscurity = 50
	Uncommon         Obscurity = 60
	VeryUncommon     Obscurity = 70
	Obscure          Obscurity = 95
)

var obscurities = []Obscurity{
	VeryCommon,
	Common,
	Average,
	SomewhatUncommon,
	Uncommon,
	VeryUncommon,
	Obscure,
}

// Obscurities returns the defined levels from most to least common.
func Obscurities() []Obscurity {
	return append([]Obscurity(nil), obscurities...)
}

func (o Obscurity) Valid() bool {
	for _, level := range obscurities {
		if o == level {
			return true
		}
	}
	return false
}
