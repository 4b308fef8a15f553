// Package morph assigns coarse morphological hints to Russian words.
//
// The recognizers only need two facts about a word: whether it is a function
// word (preposition, conjunction) and whether it can be a noun phrase member
// in the genitive case ("ИНН организации", "счет получателя"). Analyze
// derives both from a closed word list and an ending table; it does not use
// a dictionary and never fails.
//
// Hosts with a real morphological dictionary can plug it in by implementing
// Tagger and passing it to tokenizer.TokenizeWith.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Ending-based case detection is ambiguous: "банка" is reported as
//     genitive and nominative at once.
//   - Latin-script and mixed-script words are never tagged.
package morph

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// POS is a set of parts of speech.
type POS uint8

const (
	Noun POS = 1 << iota
	Adjective
	Preposition
	Conjunction
)

// Case is a set of grammatical cases.
type Case uint8

const (
	Nominative Case = 1 << iota
	Genitive
	Dative
	Accusative
	Instrumental
	Prepositional
)

// Info holds the hints for one word. The zero value means "unknown".
type Info struct {
	POS  POS
	Case Case
}

// IsPreposition reports whether the word is a preposition.
func (i Info) IsPreposition() bool { return i.POS&Preposition != 0 }

// IsConjunction reports whether the word is a conjunction.
func (i Info) IsConjunction() bool { return i.POS&Conjunction != 0 }

// IsGenitive reports whether the word can be a genitive noun or adjective.
func (i Info) IsGenitive() bool {
	return i.POS&(Noun|Adjective) != 0 && i.Case&Genitive != 0
}

// String returns a debug representation, e.g. {noun|adj gen|acc}.
func (i Info) String() string {
	var pos, cs []string
	for _, p := range posNames {
		if i.POS&p.v != 0 {
			pos = append(pos, p.name)
		}
	}
	for _, c := range caseNames {
		if i.Case&c.v != 0 {
			cs = append(cs, c.name)
		}
	}
	return fmt.Sprintf("{%s %s}", strings.Join(pos, "|"), strings.Join(cs, "|"))
}

var posNames = []struct {
	v    POS
	name string
}{
	{Noun, "noun"},
	{Adjective, "adj"},
	{Preposition, "prep"},
	{Conjunction, "conj"},
}

var caseNames = []struct {
	v    Case
	name string
}{
	{Nominative, "nom"},
	{Genitive, "gen"},
	{Dative, "dat"},
	{Accusative, "acc"},
	{Instrumental, "ins"},
	{Prepositional, "prep"},
}

// Tagger produces hints for a single word.
type Tagger interface {
	Analyze(word string) Info
}

// Default is the built-in ending-table tagger.
var Default Tagger = endingTagger{}

// Analyze returns the hints the built-in tagger assigns to word.
func Analyze(word string) Info {
	return Default.Analyze(word)
}

type endingTagger struct{}

// minStemRunes is the shortest stem left after stripping an ending.
// Shorter words ("она", "ему") are pronouns or function words.
const minStemRunes = 3

func (endingTagger) Analyze(word string) Info {
	if word == "" {
		return Info{}
	}
	w := strings.ToLower(word)
	w = strings.ReplaceAll(w, "ё", "е")
	if _, ok := prepositions[w]; ok {
		return Info{POS: Preposition}
	}
	if _, ok := conjunctions[w]; ok {
		return Info{POS: Conjunction}
	}
	for _, r := range w {
		if !unicode.Is(unicode.Cyrillic, r) {
			return Info{}
		}
	}
	n := utf8.RuneCountInString(w)
	for _, e := range endings {
		if !strings.HasSuffix(w, e.suffix) {
			continue
		}
		if n-utf8.RuneCountInString(e.suffix) < minStemRunes {
			continue
		}
		return e.info
	}
	return Info{POS: Noun, Case: Nominative | Accusative}
}
