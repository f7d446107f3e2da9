package text

import (
	"iter"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Chars yields each Unicode scalar value of s with its byte offset.
func Chars(s string) iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for i, r := range s {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Bytes yields each raw byte of s.
func Bytes(s string) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := 0; i < len(s); i++ {
			if !yield(s[i]) {
				return
			}
		}
	}
}

// Graphemes yields each user-perceived character of s. A Devanagari syllable
// with a vowel sign is one grapheme but several runes.
func Graphemes(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		gr := uniseg.NewGraphemes(s)
		for gr.Next() {
			if !yield(gr.Str()) {
				return
			}
		}
	}
}

// Stats summarizes the three ways of measuring a string.
type Stats struct {
	Bytes     int `json:"bytes" yaml:"bytes"`
	Runes     int `json:"runes" yaml:"runes"`
	Graphemes int `json:"graphemes" yaml:"graphemes"`
}

// Measure returns byte, rune and grapheme counts for s.
func Measure(s string) Stats {
	runes := 0
	for range s {
		runes++
	}
	return Stats{
		Bytes:     len(s),
		Runes:     runes,
		Graphemes: uniseg.GraphemeClusterCount(s),
	}
}

// Normalization reports the byte lengths of s in composed and decomposed form.
type Normalization struct {
	NFCBytes int  `json:"nfc_bytes" yaml:"nfc_bytes"`
	NFDBytes int  `json:"nfd_bytes" yaml:"nfd_bytes"`
	IsNFC    bool `json:"is_nfc" yaml:"is_nfc"`
}

// Normalize reports how s is stored under NFC and NFD.
func Normalize(s string) Normalization {
	return Normalization{
		NFCBytes: len(norm.NFC.String(s)),
		NFDBytes: len(norm.NFD.String(s)),
		IsNFC:    norm.NFC.IsNormalString(s),
	}
}
