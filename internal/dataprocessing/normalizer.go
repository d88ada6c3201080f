package dataprocessing

import "strings"

// zenhanTable maps the full-width punctuation, space and digits that
// appear in the feeds to their half-width equivalents. The substitution
// is total: characters outside the table pass through unchanged and
// nothing is ever dropped, so applying it twice equals applying it once.
var zenhanTable = map[rune]rune{
	'，': ',',
	'．': '.',
	'　': ' ',
	'０': '0',
	'１': '1',
	'２': '2',
	'３': '3',
	'４': '4',
	'５': '5',
	'６': '6',
	'７': '7',
	'８': '8',
	'９': '9',
}

// Normalizer applies the full-width to half-width substitution table to
// extracted body text so numeric parsing and delimiter detection see
// consistent half-width characters.
type Normalizer struct {
	table map[rune]rune
}

// NewNormalizer creates a normalizer with the standard table.
func NewNormalizer() *Normalizer {
	return &Normalizer{table: zenhanTable}
}

// Normalize returns the text with every mapped character substituted.
func (n *Normalizer) Normalize(text string) string {
	return strings.Map(func(r rune) rune {
		if mapped, ok := n.table[r]; ok {
			return mapped
		}
		return r
	}, text)
}
