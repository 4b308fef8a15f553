package uri

import (
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/open-condo-software/condo-sub035/data"
	"github.com/open-condo-software/condo-sub035/termin"
	"github.com/open-condo-software/condo-sub035/tokenizer"
)

// Analyzer recognizes identifiers in token streams. It is built once and is
// safe for concurrent Process calls on different streams.
type Analyzer struct {
	keywords    *termin.Collection
	recognizers [numFamilies]Recognizer
	enabled     [numFamilies]bool
	maxInput    int
}

type options struct {
	schemeFiles []string
	families    []Family
	maxInput    int
}

// Option configures NewAnalyzer.
type Option func(*options)

// WithSchemesFile adds the generic scheme keywords listed in the file at
// path, one per line, to the embedded list.
func WithSchemesFile(path string) Option {
	return func(o *options) { o.schemeFiles = append(o.schemeFiles, path) }
}

// WithFamilies restricts recognition to the given families. Keywords of
// other families are matched but never produce a referent.
func WithFamilies(fs ...Family) Option {
	return func(o *options) { o.families = append(o.families, fs...) }
}

// WithMaxInputBytes sets the largest input Extract processes. Zero or a
// negative n keeps the 1 MiB default.
func WithMaxInputBytes(n int) Option {
	return func(o *options) { o.maxInput = n }
}

// NewAnalyzer builds the keyword dictionary and the family recognizers.
// It fails with ErrNoSchemes when a scheme list is missing, unreadable or
// empty.
func NewAnalyzer(opts ...Option) (*Analyzer, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	lists := []io.Reader{strings.NewReader(data.Schemes)}
	for _, path := range o.schemeFiles {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(ErrNoSchemes, "open %s: %v", path, err)
		}
		defer f.Close()
		lists = append(lists, f)
	}
	kw, err := newKeywords(lists...)
	if err != nil {
		return nil, err
	}

	a := &Analyzer{keywords: kw, maxInput: maxInputBytes}
	if o.maxInput > 0 {
		a.maxInput = o.maxInput
	}
	a.recognizers = [numFamilies]Recognizer{
		Generic:    RecognizerFunc(recognizeGeneric),
		Web:        RecognizerFunc(recognizeWeb),
		Code:       RecognizerFunc(recognizeCode),
		Messenger:  RecognizerFunc(recognizeMessenger),
		Identifier: identifiers{keywords: kw},
		Cadastre:   RecognizerFunc(recognizeCadastre),
		Email:      RecognizerFunc(recognizeEmail),
		Lotus:      RecognizerFunc(recognizeLotus),
	}
	if len(o.families) == 0 {
		o.families = Families()
	}
	for _, f := range o.families {
		if int(f) >= 0 && int(f) < numFamilies {
			a.enabled[f] = true
		}
	}
	glog.V(1).Infof("uri: analyzer ready, %d keywords, families %v", kw.Len(), a.Families())
	return a, nil
}

// Keywords returns the dispatch dictionary.
func (a *Analyzer) Keywords() *termin.Collection { return a.keywords }

// Families returns the enabled families in declaration order.
func (a *Analyzer) Families() []Family {
	var out []Family
	for i, on := range a.enabled {
		if on {
			out = append(out, Family(i))
		}
	}
	return out
}

// Process scans st once, left to right, and replaces every recognized span
// with a composite token owning the canonical referent from reg. It returns
// the composite tokens it created, in text order.
//
// After a recognition the scan resumes after the last composite; after a
// miss it moves one token on. Composite tokens already in st are skipped,
// so processing a stream twice changes nothing.
func (a *Analyzer) Process(st *tokenizer.Stream, reg *Registry) []*tokenizer.Token {
	var out []*tokenizer.Token
	for t := st.First; t != nil; {
		if t.Kind == tokenizer.Composite {
			t = t.Next
			continue
		}
		next := t.Next
		var last *tokenizer.Token
		for _, m := range a.recognizeAt(t) {
			ct, err := st.Embed(m.Begin, m.End, m.Referent)
			if err != nil {
				glog.V(1).Infof("uri: drop %s: %v", m.Referent, err)
				continue
			}
			ct.Referent = reg.Register(m.Referent)
			glog.V(3).Infof("uri: %s %q [%d:%d]", m.Referent, ct.Text, ct.Start, ct.End)
			out = append(out, ct)
			last = ct
		}
		if last != nil {
			next = last.Next
		}
		t = next
	}
	glog.V(2).Infof("uri: %d spans, %d referents", len(out), reg.Len())
	return out
}

// recognizeAt runs the recognizer chosen by the keyword at t, or the
// keyword-less heuristics when there is none.
func (a *Analyzer) recognizeAt(t *tokenizer.Token) []Match {
	if kw := a.matchKeyword(t); kw != nil {
		f := Family(kw.Termin.Tag)
		if !a.enabled[f] {
			return nil
		}
		return a.recognizers[f].Recognize(t, kw)
	}

	var f Family
	switch {
	case t.IsChar('@'):
		f = Email
	case isCadastreStart(t):
		f = Cadastre
	case isLotusPart(t) && adjacentNext(t).IsChar('/'):
		f = Lotus
	case t.IsDigits() || (t.IsLetters() && t.Chars.Has(tokenizer.Latin)):
		f = Web
	default:
		return nil
	}
	if !a.enabled[f] {
		return nil
	}
	return a.recognizers[f].Recognize(t, nil)
}

// matchKeyword returns the keyword match at t. "RFC (RFC)" is one match: a
// bracketed repeat of the same keyword is absorbed.
func (a *Analyzer) matchKeyword(t *tokenizer.Token) *termin.Match {
	kw := a.keywords.TryMatch(t)
	if kw == nil {
		return nil
	}
	open := kw.End.Next
	if !open.IsChar('(') || open.NewlineBefore {
		return kw
	}
	again := a.keywords.TryMatch(open.Next)
	if again == nil || again.Termin != kw.Termin || !again.End.Next.IsChar(')') {
		return kw
	}
	return &termin.Match{Begin: kw.Begin, End: again.End.Next, Termin: kw.Termin}
}
