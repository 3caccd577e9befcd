package match

import (
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
)

// minSingularLen is the shortest token that gets singularized; shorter tokens
// are mostly abbreviations ("hrs", "qty").
const minSingularLen = 4

// noiseSuffixes are trailing header tokens that carry no meaning for matching.
// "machine_id", "MachineCode" and "Machine No." all name the machine column.
var noiseSuffixes = map[string]struct{}{
	"id": {}, "ids": {}, "code": {}, "no": {}, "nbr": {}, "num": {}, "number": {},
	"name": {}, "value": {}, "val": {}, "pct": {}, "percent": {},
}

// NormalizeHeader normalizes a spreadsheet header or ontology property name for
// fuzzy matching: case-folded, CamelCase split, separators and punctuation removed.
//
//	"Shift Start (hh:mm)" -> "shiftstarthhmm"
//	"scrapRate"           -> "scraprate"
func NormalizeHeader(s string) string {
	return strings.Join(TokenizeHeader(s), "")
}

// NormalizeHeaderWithNoiseStrip normalizes s after dropping trailing noise
// tokens. A header made only of noise tokens keeps its first token.
func NormalizeHeaderWithNoiseStrip(s string) string {
	tokens := TokenizeHeader(s)

	end := len(tokens)
	for end > 1 {
		if _, ok := noiseSuffixes[tokens[end-1]]; !ok {
			break
		}

		end--
	}

	return strings.Join(tokens[:end], "")
}

// TokenizeHeader splits s into lowercase singular tokens on separators and
// CamelCase boundaries.
//
//	"MachineID"      -> ["machine", "id"]
//	"scrap_rate_pct" -> ["scrap", "rate", "pct"]
//	"QCDept"         -> ["qc", "dept"]
//	"OrderLines"     -> ["order", "line"]
func TokenizeHeader(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		t = strings.ToLower(t)
		if len(t) >= minSingularLen {
			t = inflection.Singular(t)
		}

		tokens[i] = t
	}

	return tokens
}

func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

// isSeparator reports whether r splits header tokens. Any rune that is not a
// letter or digit counts.
func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if isSeparator(prev) {
		return false
	}

	// "orderID" splits before 'I'.
	if unicode.IsUpper(r) && !unicode.IsUpper(prev) {
		return true
	}

	// "QCDept" splits before 'D'.
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
	if unicode.IsUpper(r) && unicode.IsUpper(prev) && hasNextLower {
		return true
	}

	return false
}
