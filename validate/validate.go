// Package validate verifies the check digits of the identifiers found by
// package uri.
//
// Recognition accepts any value of the right shape; this package runs the
// registry algorithms on top of it:
//
//   - ИНН: 10 or 12 digits with one or two weighted mod-11 check digits.
//   - ОГРН / ОГРНИП: 13 digits mod 11, 15 digits mod 13.
//   - СНИЛС: 11 digits, the last two a weighted mod-101 checksum.
//   - IBAN: ISO 13616 mod-97.
//   - ISBN: ISBN-10 mod 11, ISBN-13 mod 10.
//   - Р/С and К/С: the account key, checked against the БИК found in the
//     same document.
//
// Two API layers are provided:
//
//   - Structured: [Validate] and [Entities] return a [Report] with a score
//     (0–100) and a positioned issue list sorted by byte offset.
//   - Convenience: [IsValid] checks one scheme/value pair.
//
// The score starts at 100 and deducts points per issue: error −10, warning
// −3, info −1, with a floor of 0.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - An account is checked against the first БИК of the document; documents
//     listing several banks may report false errors.
//   - КПП, БИК and the ОК* codes have no check digit and are not verified.
package validate

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/open-condo-software/condo-sub035/uri"
)

// IssueType classifies a validation issue.
type IssueType int

const (
	CheckDigit IssueType = iota // check digit mismatch
	Length                      // value length has no check algorithm
	Unchecked                   // value could not be checked
)

// issueTypeNames maps IssueType values to their string names.
var issueTypeNames = [...]string{
	CheckDigit: "check_digit",
	Length:     "length",
	Unchecked:  "unchecked",
}

// issueTypeFromName maps string names back to IssueType values.
var issueTypeFromName = map[string]IssueType{
	"check_digit": CheckDigit,
	"length":      Length,
	"unchecked":   Unchecked,
}

// String returns the name of the issue type.
func (t IssueType) String() string {
	if int(t) >= 0 && int(t) < len(issueTypeNames) {
		return issueTypeNames[t]
	}
	return fmt.Sprintf("IssueType(%d)", int(t))
}

// MarshalJSON encodes the issue type as a JSON string (e.g. "check_digit").
func (t IssueType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "length") into an IssueType.
func (t *IssueType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	it, ok := issueTypeFromName[s]
	if !ok {
		return fmt.Errorf("validate: unknown issue type: %q", s)
	}
	*t = it
	return nil
}

// MarshalYAML encodes the issue type as its name.
func (t IssueType) MarshalYAML() (any, error) { return t.String(), nil }

// Severity indicates the severity of a validation issue.
// Higher numeric values mean higher severity.
type Severity int

const (
	Info    Severity = iota // informational
	Warning                 // suspicious
	Error                   // invalid identifier
)

var severityNames = [...]string{
	Info:    "info",
	Warning: "warning",
	Error:   "error",
}

var severityFromName = map[string]Severity{
	"info":    Info,
	"warning": Warning,
	"error":   Error,
}

// String returns the name of the severity.
func (s Severity) String() string {
	if int(s) >= 0 && int(s) < len(severityNames) {
		return severityNames[s]
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// MarshalJSON encodes the severity as a JSON string (e.g. "error").
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "error") into a Severity.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	sv, ok := severityFromName[str]
	if !ok {
		return fmt.Errorf("validate: unknown severity: %q", str)
	}
	*s = sv
	return nil
}

// MarshalYAML encodes the severity as its name.
func (s Severity) MarshalYAML() (any, error) { return s.String(), nil }

// Issue is one finding about a recognized identifier.
type Issue struct {
	Scheme   string    `json:"scheme" yaml:"scheme"`
	Value    string    `json:"value" yaml:"value"`
	Text     string    `json:"text" yaml:"text"`
	Start    int       `json:"start" yaml:"start"` // byte offset, inclusive
	End      int       `json:"end" yaml:"end"`     // byte offset, exclusive
	Type     IssueType `json:"type" yaml:"type"`
	Severity Severity  `json:"severity" yaml:"severity"`
	Message  string    `json:"message" yaml:"message"`
}

// Report contains the validation result: a score and the issue list.
type Report struct {
	Score   int     `json:"score" yaml:"score"`     // 0-100, higher is better
	Checked int     `json:"checked" yaml:"checked"` // identifiers with a check algorithm
	Issues  []Issue `json:"issues" yaml:"issues"`   // sorted by byte offset, then severity desc
}

const (
	maxIssues     = 1000 // cap total issues to prevent memory exhaustion
	deductError   = 10   // score penalty per error-severity issue
	deductWarning = 3    // score penalty per warning-severity issue
	deductInfo    = 1    // score penalty per info-severity issue
	maxScore      = 100  // starting score (no issues)
)

// Validate recognizes the identifiers in text with uri.Extract and checks
// them. Empty or oversized input returns Report{Score: 100}.
func Validate(text string) Report {
	return Entities(uri.Extract(text))
}

// Entities checks already recognized entities.
func Entities(es []uri.Entity) Report {
	if len(es) == 0 {
		return Report{Score: maxScore}
	}
	bik := ""
	for _, e := range es {
		if e.Scheme == "БИК" {
			bik = e.Value
			break
		}
	}

	var issues []Issue
	checked := 0
	for _, e := range es {
		if len(issues) >= maxIssues {
			break
		}
		c, ok := checks[e.Scheme]
		if !ok {
			continue
		}
		checked++
		if typ, sev, msg := c(e.Value, bik); msg != "" {
			issues = append(issues, Issue{
				Scheme:   e.Scheme,
				Value:    e.Value,
				Text:     e.Text,
				Start:    e.Start,
				End:      e.End,
				Type:     typ,
				Severity: sev,
				Message:  msg,
			})
		}
	}

	slices.SortStableFunc(issues, func(a, b Issue) int {
		if a.Start != b.Start {
			if a.Start < b.Start {
				return -1
			}
			return 1
		}
		if a.Severity != b.Severity {
			if a.Severity > b.Severity {
				return -1
			}
			return 1
		}
		return 0
	})

	return Report{
		Score:   calculateScore(issues),
		Checked: checked,
		Issues:  issues,
	}
}

// IsValid reports whether value passes the check for scheme. Schemes
// without a check algorithm, and accounts (which need a БИК), are valid.
func IsValid(scheme, value string) bool {
	c, ok := checks[scheme]
	if !ok {
		return true
	}
	_, sev, msg := c(value, "")
	return msg == "" || sev < Error
}

// calculateScore computes the score from the issue list.
// Starts at 100, deducts per issue by severity, floors at 0.
func calculateScore(issues []Issue) int {
	score := maxScore
	for _, issue := range issues {
		switch issue.Severity {
		case Error:
			score -= deductError
		case Warning:
			score -= deductWarning
		case Info:
			score -= deductInfo
		}
	}
	if score < 0 {
		score = 0
	}
	return score
}
