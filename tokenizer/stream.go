package tokenizer

import (
	"github.com/pkg/errors"
)

// ErrBadRange is returned when a token range is empty, reversed, or not part
// of the stream.
var ErrBadRange = errors.New("tokenizer: token range is not part of the stream")

// Stream is a doubly linked token sequence over one source string.
type Stream struct {
	Source string
	First  *Token
	Last   *Token
}

func (s *Stream) append(t *Token) {
	t.stream = s
	if s.Last == nil {
		s.First, s.Last = t, t
		return
	}
	s.Last.WhitespacesAfter = t.WhitespacesBefore
	s.Last.NewlineAfter = t.NewlineBefore
	s.Last.Next = t
	t.Prev = s.Last
	s.Last = t
}

// Tokens returns the top-level tokens in order.
func (s *Stream) Tokens() []*Token {
	var out []*Token
	for t := s.First; t != nil; t = t.Next {
		out = append(out, t)
	}
	return out
}

// Len returns the number of top-level tokens.
func (s *Stream) Len() int {
	n := 0
	for t := s.First; t != nil; t = t.Next {
		n++
	}
	return n
}

// Composites returns the composite tokens in order.
func (s *Stream) Composites() []*Token {
	var out []*Token
	for t := s.First; t != nil; t = t.Next {
		if t.Kind == Composite {
			out = append(out, t)
		}
	}
	return out
}

// Contains reports whether t is a top-level token of s.
func (s *Stream) Contains(t *Token) bool {
	return t != nil && t.stream == s && t.Parent == nil
}

// Embed replaces the range [begin, end] with one composite token owning ref
// and returns it. The range must be non-empty, ordered, and fully contained
// in s. The wrapped tokens stay reachable through the composite's Begin and
// Last fields.
func (s *Stream) Embed(begin, end *Token, ref Referent) (*Token, error) {
	if begin == nil || end == nil {
		return nil, errors.Wrap(ErrBadRange, "embed: nil bound")
	}
	if !s.Contains(begin) {
		return nil, errors.Wrapf(ErrBadRange, "embed: %s", begin)
	}
	if !reaches(begin, end) {
		return nil, errors.Wrapf(ErrBadRange, "embed: %s does not follow %s", end, begin)
	}

	ct := &Token{
		Kind:              Composite,
		Text:              s.Source[begin.Start:end.End],
		Start:             begin.Start,
		End:               end.End,
		WhitespacesBefore: begin.WhitespacesBefore,
		WhitespacesAfter:  end.WhitespacesAfter,
		NewlineBefore:     begin.NewlineBefore,
		NewlineAfter:      end.NewlineAfter,
		Begin:             begin,
		Last:              end,
		Referent:          ref,
		Prev:              begin.Prev,
		Next:              end.Next,
		stream:            s,
	}
	ct.Term = ct.Text
	adopt(ct, begin, end)

	if ct.Prev != nil {
		ct.Prev.Next = ct
	} else {
		s.First = ct
	}
	if ct.Next != nil {
		ct.Next.Prev = ct
	} else {
		s.Last = ct
	}
	begin.Prev = nil
	end.Next = nil
	return ct, nil
}

// Widen grows the composite ct so that it starts at begin and ends at end.
// begin must be ct or precede it, end must be ct or follow it. A nil bound
// leaves that side unchanged. Absorbed tokens are appended to the wrapped
// range.
//
// Recognizers settle their bounds before Embed, so the uri analyzer never
// widens. Widen is for host pipelines that extend a span after recognition,
// such as a caller absorbing the brackets around a recognized entity.
func (s *Stream) Widen(ct, begin, end *Token) error {
	if ct == nil || ct.Kind != Composite {
		return errors.Wrap(ErrBadRange, "widen: not a composite token")
	}
	if !s.Contains(ct) {
		return errors.Wrapf(ErrBadRange, "widen: %s", ct)
	}
	if begin == nil {
		begin = ct
	}
	if end == nil {
		end = ct
	}
	if !reaches(begin, ct) || !reaches(ct, end) {
		return errors.Wrapf(ErrBadRange, "widen: %s..%s around %s", begin, end, ct)
	}

	if begin != ct {
		adopt(ct, begin, ct.Prev)
		outer := begin.Prev
		left := ct.Prev
		left.Next = ct.Begin
		ct.Begin.Prev = left
		begin.Prev = nil
		ct.Begin = begin
		ct.Prev = outer
		if outer != nil {
			outer.Next = ct
		} else {
			s.First = ct
		}
		ct.Start = begin.Start
		ct.WhitespacesBefore = begin.WhitespacesBefore
		ct.NewlineBefore = begin.NewlineBefore
	}
	if end != ct {
		adopt(ct, ct.Next, end)
		outer := end.Next
		right := ct.Next
		right.Prev = ct.Last
		ct.Last.Next = right
		end.Next = nil
		ct.Last = end
		ct.Next = outer
		if outer != nil {
			outer.Prev = ct
		} else {
			s.Last = ct
		}
		ct.End = end.End
		ct.WhitespacesAfter = end.WhitespacesAfter
		ct.NewlineAfter = end.NewlineAfter
	}
	ct.Text = s.Source[ct.Start:ct.End]
	ct.Term = ct.Text
	return nil
}

// adopt marks the tokens [begin, end] as wrapped by ct.
func adopt(ct, begin, end *Token) {
	for t := begin; t != nil; t = t.Next {
		t.Parent = ct
		if t == end {
			break
		}
	}
}

// reaches reports whether to is from or follows it.
func reaches(from, to *Token) bool {
	for t := from; t != nil; t = t.Next {
		if t == to {
			return true
		}
	}
	return false
}
