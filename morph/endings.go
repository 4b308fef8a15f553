package morph

var prepositions = map[string]struct{}{
	"в": {}, "во": {}, "на": {}, "по": {}, "с": {}, "со": {}, "у": {}, "к": {},
	"ко": {}, "о": {}, "об": {}, "обо": {}, "от": {}, "до": {}, "из": {}, "за": {},
	"для": {}, "при": {}, "без": {}, "под": {}, "над": {}, "через": {}, "про": {},
}

var conjunctions = map[string]struct{}{
	"и": {}, "или": {}, "а": {}, "но": {}, "либо": {},
}

// endings is ordered longest first; the first matching suffix wins.
var endings = []struct {
	suffix string
	info   Info
}{
	{"теля", Info{Noun, Genitive | Accusative}},
	{"щика", Info{Noun, Genitive | Accusative}},
	{"чика", Info{Noun, Genitive | Accusative}},
	{"ника", Info{Noun, Genitive | Accusative}},
	{"ции", Info{Noun, Genitive | Dative | Prepositional}},
	{"ого", Info{Adjective, Genitive | Accusative}},
	{"его", Info{Adjective, Genitive | Accusative}},
	{"ний", Info{Noun, Genitive}},
	{"ий", Info{Adjective, Nominative | Accusative}},
	{"ый", Info{Adjective, Nominative | Accusative}},
	{"ой", Info{Adjective, Genitive | Dative | Instrumental | Prepositional}},
	{"ей", Info{Adjective | Noun, Genitive | Dative | Instrumental | Prepositional}},
	{"ых", Info{Adjective, Genitive | Accusative | Prepositional}},
	{"их", Info{Adjective, Genitive | Accusative | Prepositional}},
	{"ов", Info{Noun, Genitive | Accusative}},
	{"ев", Info{Noun, Genitive | Accusative}},
	{"ии", Info{Noun, Genitive | Dative | Prepositional}},
	{"ом", Info{Noun, Instrumental}},
	{"ем", Info{Noun, Instrumental}},
	{"ая", Info{Adjective, Nominative}},
	{"яя", Info{Adjective, Nominative}},
	{"ие", Info{Noun, Nominative | Accusative}},
	{"а", Info{Noun, Genitive | Nominative}},
	{"я", Info{Noun, Genitive | Nominative}},
	{"ы", Info{Noun, Genitive | Nominative}},
	{"и", Info{Noun, Genitive | Nominative}},
	{"е", Info{Noun, Dative | Prepositional}},
	{"у", Info{Noun, Dative | Accusative}},
}
