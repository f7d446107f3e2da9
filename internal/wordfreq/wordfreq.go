// Package wordfreq counts whitespace-separated tokens. Punctuation stays part
// of the token, so "Rust." and "Rust" are different words.
package wordfreq

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// Tokenize splits s on runs of Unicode whitespace.
func Tokenize(s string) []string {
	return strings.Fields(s)
}

// Count returns how often each token of s occurs.
func Count(s string) map[string]int {
	c := NewCounter()
	for _, tok := range Tokenize(s) {
		c.Add(tok)
	}
	return c.Map()
}

// Entry is a token with its count.
type Entry struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Counter accumulates token counts.
type Counter struct {
	counts map[string]int
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add records one occurrence of word.
func (c *Counter) Add(word string) {
	c.counts[word]++
}

// AddText records every token of s.
func (c *Counter) AddText(s string) {
	for _, tok := range Tokenize(s) {
		c.Add(tok)
	}
}

// ReadFrom tokenizes r word by word.
func (c *Counter) ReadFrom(r io.Reader) (int64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var n int64
	for sc.Scan() {
		c.Add(sc.Text())
		n++
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("scan words: %w", err)
	}
	return n, nil
}

// Merge adds every count of other into c.
func (c *Counter) Merge(other *Counter) {
	for w, n := range other.counts {
		c.counts[w] += n
	}
}

// Get returns the count for word, zero when unseen.
func (c *Counter) Get(word string) int {
	return c.counts[word]
}

// Total returns the number of tokens seen.
func (c *Counter) Total() int {
	sum := 0
	for _, n := range c.counts {
		sum += n
	}
	return sum
}

// Distinct returns the number of distinct tokens.
func (c *Counter) Distinct() int {
	return len(c.counts)
}

// Map returns a copy of the counts.
func (c *Counter) Map() map[string]int {
	return maps.Clone(c.counts)
}

// Top returns the n most frequent entries, ties broken by word. n <= 0
// returns every entry.
func (c *Counter) Top(n int) []Entry {
	return Top(c.counts, n)
}

// Top ranks counts by descending count then ascending word.
func Top(counts map[string]int, n int) []Entry {
	entries := make([]Entry, 0, len(counts))
	for w, k := range counts {
		entries = append(entries, Entry{Word: w, Count: k})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Word, b.Word)
	})
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
