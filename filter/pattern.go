package filter

import "regexp"

// Pattern selects candidate symbol lines: ten leading zeros followed,
// anywhere later on the line, by "C2". It is a prefix test; nothing is
// required after "C2".
var Pattern = regexp.MustCompile(`^0000000000.*C2`)

// Match reports whether line is a candidate symbol.
// Callers trim surrounding whitespace first.
func Match(line string) bool {
	return Pattern.MatchString(line)
}
