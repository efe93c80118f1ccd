// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

package components

import (
	"sort"
	"strings"
)

// DefaultDelimiter separates the component prefix from the rest of an
// object name (e.g. "billing-api-7d4f" -> "billing").
const DefaultDelimiter = "-"

// FirstToken returns the substring of s before the first occurrence of
// delimiter, or s itself when the delimiter is absent. An empty input
// yields an empty token.
func FirstToken(s, delimiter string) string {
	if idx := strings.Index(s, delimiter); idx != -1 {
		return s[:idx]
	}
	return s
}

// TokenCount pairs a token with its occurrence count.
type TokenCount struct {
	Token string
	Count int
}

// TokenCounts is a frequency count of first tokens that remembers the
// order in which each distinct token was first seen. Go maps iterate in
// random order, so the insertion order is tracked separately to keep
// ranking deterministic.
type TokenCounts struct {
	counts map[string]int
	order  []string
}

// CountFirstTokens counts the first delimiter-token of every name in the
// input, preserving first-seen order of the distinct tokens.
func CountFirstTokens(names []string, delimiter string) *TokenCounts {
	tc := &TokenCounts{counts: make(map[string]int)}
	for _, name := range names {
		token := FirstToken(name, delimiter)
		if _, seen := tc.counts[token]; !seen {
			tc.order = append(tc.order, token)
		}
		tc.counts[token]++
	}
	return tc
}

// Get returns the count for token, or 0 when the token was never seen.
func (tc *TokenCounts) Get(token string) int {
	return tc.counts[token]
}

// Tokens returns the distinct tokens in first-seen order.
func (tc *TokenCounts) Tokens() []string {
	out := make([]string, len(tc.order))
	copy(out, tc.order)
	return out
}

// Len returns the number of distinct tokens.
func (tc *TokenCounts) Len() int {
	return len(tc.order)
}

// RankByFrequency returns the tokens sorted by descending count. Tokens
// with equal counts keep their first-seen relative order.
func RankByFrequency(tc *TokenCounts) []TokenCount {
	ranked := make([]TokenCount, 0, len(tc.order))
	for _, token := range tc.order {
		ranked = append(ranked, TokenCount{Token: token, Count: tc.counts[token]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}
