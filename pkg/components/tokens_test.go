// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

package components

import "testing"

func TestFirstToken(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		delimiter string
		expected  string
	}{
		{
			name:      "multi token name",
			input:     "foo-bar-baz",
			delimiter: "-",
			expected:  "foo",
		},
		{
			name:      "no delimiter present",
			input:     "noeq",
			delimiter: "-",
			expected:  "noeq",
		},
		{
			name:      "empty string",
			input:     "",
			delimiter: "-",
			expected:  "",
		},
		{
			name:      "leading delimiter",
			input:     "-web",
			delimiter: "-",
			expected:  "",
		},
		{
			name:      "custom delimiter",
			input:     "team.prod.api",
			delimiter: ".",
			expected:  "team",
		},
		{
			name:      "pod style name",
			input:     "web-7d4f9c-x2lqp",
			delimiter: "-",
			expected:  "web",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FirstToken(tt.input, tt.delimiter)
			if got != tt.expected {
				t.Errorf("FirstToken(%q, %q) = %q, want %q", tt.input, tt.delimiter, got, tt.expected)
			}
		})
	}
}

func TestCountFirstTokens(t *testing.T) {
	tc := CountFirstTokens([]string{"a-1", "a-2", "b-1"}, "-")

	if got := tc.Get("a"); got != 2 {
		t.Errorf("Get(a) = %d, want 2", got)
	}
	if got := tc.Get("b"); got != 1 {
		t.Errorf("Get(b) = %d, want 1", got)
	}
	if got := tc.Get("missing"); got != 0 {
		t.Errorf("Get(missing) = %d, want 0", got)
	}

	tokens := tc.Tokens()
	if len(tokens) != 2 || tokens[0] != "a" || tokens[1] != "b" {
		t.Errorf("Tokens() = %v, want [a b]", tokens)
	}
}

func TestCountFirstTokensEmptyInput(t *testing.T) {
	tc := CountFirstTokens(nil, "-")
	if tc.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tc.Len())
	}
	if len(RankByFrequency(tc)) != 0 {
		t.Errorf("RankByFrequency on empty counts should be empty")
	}
}

func TestRankByFrequency(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []TokenCount
	}{
		{
			name:  "descending by count",
			input: []string{"a-1", "b-1", "a-2"},
			expected: []TokenCount{
				{Token: "a", Count: 2},
				{Token: "b", Count: 1},
			},
		},
		{
			name:  "ties keep first seen order",
			input: []string{"x-1", "y-1"},
			expected: []TokenCount{
				{Token: "x", Count: 1},
				{Token: "y", Count: 1},
			},
		},
		{
			name:  "larger group surfaces first regardless of position",
			input: []string{"cache-1", "web-1", "web-2", "web-3", "queue-1", "queue-2"},
			expected: []TokenCount{
				{Token: "web", Count: 3},
				{Token: "queue", Count: 2},
				{Token: "cache", Count: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RankByFrequency(CountFirstTokens(tt.input, "-"))
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d entries, want %d: %v", len(got), len(tt.expected), got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("entry %d = %+v, want %+v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}
