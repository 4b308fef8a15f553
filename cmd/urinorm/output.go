package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/open-condo-software/condo-sub035/config"
	"github.com/open-condo-software/condo-sub035/termin"
	"github.com/open-condo-software/condo-sub035/uri"
	"github.com/open-condo-software/condo-sub035/validate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// encode writes v as indented JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encode json")
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return enc.Close()
	}
	return errors.Errorf("unknown output format %q", format)
}

func writeEntities(w io.Writer, format string, es []uri.Entity) error {
	if es == nil {
		es = []uri.Entity{}
	}
	if format != config.FormatText {
		return encode(w, format, es)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range es {
		fmt.Fprintf(tw, "%d:%d\t%s:%s\t%q\n", e.Start, e.End, e.Scheme, e.Value, e.Text)
	}
	return tw.Flush()
}

func writeReferents(w io.Writer, format string, rs []*uri.Referent) error {
	if rs == nil {
		rs = []*uri.Referent{}
	}
	if format != config.FormatText {
		return encode(w, format, rs)
	}
	for _, r := range rs {
		if _, err := fmt.Fprintln(w, r); err != nil {
			return err
		}
	}
	return nil
}

func writeReport(w io.Writer, format string, r validate.Report) error {
	if format != config.FormatText {
		return encode(w, format, r)
	}
	fmt.Fprintf(w, "score %d, %d checked, %d issues\n", r.Score, r.Checked, len(r.Issues))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, is := range r.Issues {
		fmt.Fprintf(tw, "%d:%d\t%s\t%s:%s\t%s\n", is.Start, is.End, is.Severity, is.Scheme, is.Value, is.Message)
	}
	return tw.Flush()
}

// keywordEntry is one dictionary line of the schemes command.
type keywordEntry struct {
	Keyword  string   `json:"keyword" yaml:"keyword"`
	Family   string   `json:"family" yaml:"family"`
	Variants []string `json:"variants,omitempty" yaml:"variants,omitempty"`
}

func writeKeywords(w io.Writer, format string, ts []*termin.Termin) error {
	es := make([]keywordEntry, len(ts))
	for i, t := range ts {
		es[i] = keywordOf(t)
	}
	if format != config.FormatText {
		return encode(w, format, es)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range es {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Keyword, e.Family, strings.Join(e.Variants, ", "))
	}
	return tw.Flush()
}

// keywordOf lists the variants of t other than its canonical form.
func keywordOf(t *termin.Termin) keywordEntry {
	e := keywordEntry{Keyword: t.Canonical, Family: uri.Family(t.Tag).String()}
	for _, v := range t.Variants {
		if v != t.Canonical {
			e.Variants = append(e.Variants, v)
		}
	}
	return e
}
