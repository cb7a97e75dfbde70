package sanitizer

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NFC puts s in Unicode canonical composition form, so "e" followed by a
// combining acute accent counts as the single character "é".
func NFC(s string) string {
	return norm.NFC.String(s)
}

// NFKC applies compatibility composition, folding ligatures and
// full-width forms into their plain equivalents.
func NFKC(s string) string {
	return norm.NFKC.String(s)
}

// FoldCase applies Unicode case folding for caseless comparison. Unlike
// ToLower it maps "ß" to "ss".
func FoldCase(s string) string {
	return cases.Fold().String(s)
}
