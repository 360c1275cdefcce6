// Package ngram provides n-gram sets over whitespace token sequences and
// the trigram novelty check used to keep redundant spans out of a summary.
package ngram

import (
	"strconv"
	"strings"
)

// Set is a set of fixed-length contiguous token windows. Window order is
// irrelevant and duplicate windows collapse.
type Set map[string]struct{}

// FromTokens returns the set of all length-n contiguous windows in tokens.
// Fewer than n tokens yields an empty set.
func FromTokens(n int, tokens []string) Set {
	if n <= 0 {
		panic("ngram: n must be positive")
	}
	set := make(Set)
	for i := 0; i+n <= len(tokens); i++ {
		set[key(tokens[i:i+n])] = struct{}{}
	}
	return set
}

// FromText whitespace-tokenizes text and returns its n-gram set.
func FromText(n int, text string) Set {
	return FromTokens(n, strings.Fields(text))
}

// FromSentences combines the tokens of every sentence into one sequence,
// in order, and returns its n-gram set. Windows may straddle sentence
// boundaries, matching the flattened-bag behaviour the summariser expects.
func FromSentences(n int, sentences [][]string) Set {
	total := 0
	for _, s := range sentences {
		total += len(s)
	}
	flat := make([]string, 0, total)
	for _, s := range sentences {
		flat = append(flat, s...)
	}
	return FromTokens(n, flat)
}

// Contains reports whether the window formed by tokens is in the set.
func (s Set) Contains(tokens ...string) bool {
	_, ok := s[key(tokens)]
	return ok
}

// Intersects reports whether the two sets share at least one window.
func (s Set) Intersects(other Set) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for k := range small {
		if _, ok := large[k]; ok {
			return true
		}
	}
	return false
}

// Blocked reports whether candidate repeats any length-n window already
// present in one of the accepted spans. It short-circuits on the first
// shared window; the order of accepted never changes the result. The
// decision depends only on the arguments, so concurrent calls are safe.
//
// A candidate with fewer than n tokens has an empty window set and is
// never blocked.
func Blocked(n int, candidate string, accepted []string) bool {
	cand := FromText(n, candidate)
	if len(cand) == 0 {
		return false
	}
	for _, span := range accepted {
		if overlaps(cand, n, strings.Fields(span)) {
			return true
		}
	}
	return false
}

// BlockTrigrams is Blocked with n=3, the order used for summary decoding.
func BlockTrigrams(candidate string, accepted []string) bool {
	return Blocked(3, candidate, accepted)
}

// overlaps slides a length-n window over tokens and tests membership in
// cand directly, so a hit returns before the span's full set is built.
func overlaps(cand Set, n int, tokens []string) bool {
	for i := 0; i+n <= len(tokens); i++ {
		if _, ok := cand[key(tokens[i:i+n])]; ok {
			return true
		}
	}
	return false
}

// key encodes one window so that two distinct token tuples can never map
// to the same string: each token is length-prefixed before concatenation,
// making the encoding injective regardless of token content.
func key(tokens []string) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(strconv.Itoa(len(tok)))
		b.WriteByte(':')
		b.WriteString(tok)
	}
	return b.String()
}
