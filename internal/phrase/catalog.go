package phrase

var (
	Spell = MustNew("spell", "I cast {} {}.",
		NewPart(TransitiveVerb, Average),
		NewPart(Noun, Average),
	)

	Reaction = MustNew("reaction", "{}!",
		NewPart(Interjection, Average),
	)

	Miniboss = MustNew("miniboss", "You encounter the {} {}! What would you like to do?",
		NewPart(Adjective, Average),
		NewPart(Noun, Average),
	)

	Boss = MustNew("boss", "You've found the {} {} {}! What would you like to do?",
		NewPart(Adjective, Average),
		NewPart(Adjective, Average),
		NewPart(Noun, Average),
	)

	BBEG = MustNew("bbeg", "Finally, you've found the {} {} {} {}! What would you like to do?",
		NewPart(Adjective, Average),
		NewPart(Noun, Average),
		NewPart(Preposition, VeryCommon).Untitled(),
		NewPart(Noun, Average),
	)
)

// Catalog returns the served phrases in route order.
func Catalog() []Phrase {
	return []Phrase{Spell, Reaction, Miniboss, Boss, BBEG}
}

// Lookup finds a catalog phrase by name.
func Lookup(name string) (Phrase, bool) {
	for _, p := range Catalog() {
		if p.Name == name {
			return p, true
		}
	}
	return Phrase{}, false
}

// CatalogParts returns the parts of every catalog phrase, in order.
func CatalogParts() []Part {
	var parts []Part
	for _, p := range Catalog() {
		parts = append(parts, p.Parts...)
	}
	return parts
}
