package validate

import (
	"strings"
)

// check verifies value and returns an empty message when it passes. bik is
// the first БИК of the document, or "".
type check func(value, bik string) (IssueType, Severity, string)

// checks maps uri schemes to their check algorithms.
var checks = map[string]check{
	"ИНН":    checkINN,
	"ОГРН":   checkOGRN,
	"ОГРНИП": checkOGRN,
	"СНИЛС":  checkSNILS,
	"IBAN":   checkIBAN,
	"ISBN":   checkISBN,
	"Р/С":    accountCheck(false),
	"К/С":    accountCheck(true),
}

// ── Weighted digit sums ────────────────────────────────────────────────

var (
	innWeights10 = []int{2, 4, 10, 3, 5, 9, 4, 6, 8}
	innWeights11 = []int{7, 2, 4, 10, 3, 5, 9, 4, 6, 8}
	innWeights12 = []int{3, 7, 2, 4, 10, 3, 5, 9, 4, 6, 8}
	accWeights   = []int{7, 1, 3}
)

// digits returns the decimal digits of s, or nil if s holds anything else.
func digits(s string) []int {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil
		}
		out[i] = int(s[i] - '0')
	}
	return out
}

// weighted returns the sum of d[i]*w[i] over w.
func weighted(d, w []int) int {
	sum := 0
	for i, x := range w {
		sum += d[i] * x
	}
	return sum
}

// mod returns the number written by d modulo m.
func mod(d []int, m int) int {
	r := 0
	for _, x := range d {
		r = (r*10 + x) % m
	}
	return r
}

// ── Tax and registration numbers ───────────────────────────────────────

func checkINN(value, _ string) (IssueType, Severity, string) {
	d := digits(value)
	switch len(d) {
	case 10:
		if weighted(d, innWeights10)%11%10 != d[9] {
			return CheckDigit, Error, "ИНН check digit mismatch"
		}
	case 12:
		if weighted(d, innWeights11)%11%10 != d[10] || weighted(d, innWeights12)%11%10 != d[11] {
			return CheckDigit, Error, "ИНН check digits mismatch"
		}
	default:
		return Length, Warning, "ИНН must have 10 or 12 digits"
	}
	return 0, 0, ""
}

// checkOGRN verifies ОГРН (13 digits, mod 11) and ОГРНИП (15 digits,
// mod 13) by length, whichever keyword introduced the value.
func checkOGRN(value, _ string) (IssueType, Severity, string) {
	d := digits(value)
	var m int
	switch len(d) {
	case 13:
		m = 11
	case 15:
		m = 13
	default:
		return Length, Warning, "ОГРН must have 13 digits, ОГРНИП 15"
	}
	n := len(d) - 1
	if mod(d[:n], m)%10 != d[n] {
		return CheckDigit, Error, "ОГРН check digit mismatch"
	}
	return 0, 0, ""
}

// snilsChecked is the lowest СНИЛС number covered by the checksum.
const snilsChecked = 1001998

func checkSNILS(value, _ string) (IssueType, Severity, string) {
	d := digits(value)
	if len(d) != 11 {
		return Length, Warning, "СНИЛС must have 11 digits"
	}
	number := 0
	for _, x := range d[:9] {
		number = number*10 + x
	}
	if number <= snilsChecked {
		return 0, 0, ""
	}
	sum := 0
	for i, x := range d[:9] {
		sum += x * (9 - i)
	}
	ctrl := sum
	if ctrl >= 100 {
		ctrl %= 101
		if ctrl == 100 {
			ctrl = 0
		}
	}
	if ctrl != d[9]*10+d[10] {
		return CheckDigit, Error, "СНИЛС checksum mismatch"
	}
	return 0, 0, ""
}

// ── International numbers ──────────────────────────────────────────────

func checkIBAN(value, _ string) (IssueType, Severity, string) {
	if len(value) < 5 {
		return Length, Warning, "IBAN too short"
	}
	r := 0
	for _, c := range value[4:] + value[:4] {
		switch {
		case c >= '0' && c <= '9':
			r = (r*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			r = (r*100 + int(c-'A') + 10) % 97
		default:
			return CheckDigit, Error, "IBAN holds an invalid character"
		}
	}
	if r != 1 {
		return CheckDigit, Error, "IBAN checksum mismatch"
	}
	return 0, 0, ""
}

func checkISBN(value, _ string) (IssueType, Severity, string) {
	s := strings.ReplaceAll(value, "-", "")
	sum := 0
	switch len(s) {
	case 10:
		for i := 0; i < 10; i++ {
			x := int(s[i] - '0')
			if i == 9 && s[i] == 'X' {
				x = 10
			} else if s[i] < '0' || s[i] > '9' {
				return CheckDigit, Error, "ISBN holds an invalid character"
			}
			sum += (10 - i) * x
		}
		if sum%11 != 0 {
			return CheckDigit, Error, "ISBN-10 check digit mismatch"
		}
	case 13:
		d := digits(s)
		if d == nil {
			return CheckDigit, Error, "ISBN holds an invalid character"
		}
		for i, x := range d {
			sum += x * (1 + 2*(i%2))
		}
		if sum%10 != 0 {
			return CheckDigit, Error, "ISBN-13 check digit mismatch"
		}
	default:
		return Length, Warning, "ISBN must have 10 or 13 digits"
	}
	return 0, 0, ""
}

// ── Bank accounts ──────────────────────────────────────────────────────

// accountCheck verifies the key digit of a 20-digit account against the
// БИК: a settlement account is prefixed with the last three БИК digits, a
// correspondent account with "0" and БИК digits 5-6.
func accountCheck(correspondent bool) check {
	return func(value, bik string) (IssueType, Severity, string) {
		if bik == "" {
			return Unchecked, Info, "no БИК in the document, account key not checked"
		}
		b := digits(bik)
		if len(b) != 9 {
			return Unchecked, Info, "malformed БИК, account key not checked"
		}
		a := digits(value)
		if len(a) != 20 {
			return Length, Warning, "account must have 20 digits"
		}
		var p []int
		if correspondent {
			p = append([]int{0}, b[4:6]...)
		} else {
			p = append([]int(nil), b[6:9]...)
		}
		p = append(p, a...)
		sum := 0
		for i, x := range p {
			sum += x * accWeights[i%3] % 10
		}
		if sum%10 != 0 {
			return CheckDigit, Error, "account key does not match the БИК"
		}
		return 0, 0, ""
	}
}
