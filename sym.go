package gamess

import "strings"

// NormalizeSym rewrites a raw GAMESS symmetry label into the canonical
// form used in the Data record. Two rules apply: a pair of single
// quotes after the first character becomes one double quote, and any U
// or G after the first character is lowercased.
//
//	A    -> A
//	A1G  -> A1g
//	A'   -> A'
//	A''  -> A"
//	AG   -> Ag
func NormalizeSym(label string) string {
	if len(label) < 2 {
		return label
	}
	rest := label[1:]
	if rest == "''" {
		rest = `"`
	} else {
		rest = strings.ReplaceAll(rest, "U", "u")
		rest = strings.ReplaceAll(rest, "G", "g")
	}
	return label[:1] + rest
}
