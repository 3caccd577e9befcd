package profile

import (
	"strconv"

	"github.com/jinzhu/inflection"
)

// pluralize renders a count with its noun, e.g. "3 unique values".
func pluralize(n int, noun string) string {
	if n != 1 {
		noun = inflection.Plural(noun)
	}

	return strconv.Itoa(n) + " " + noun
}
