package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chatter-hub/errors"
)

// TestModerator_Scan
// The dictionary uses specific words to avoid partial collisions (e.g., "he" inside "The")
func TestModerator_Scan(t *testing.T) {
	req := require.New(t)
	dictionary := []string{"badger", "snake", "mushroom"}
	mod, err := NewModerator(dictionary)
	req.NoError(err)

	tests := []struct {
		name  string
		input string
		terms []string
	}{
		{
			name:  "Simple word",
			input: "The badger is here",
			terms: []string{"badger"},
		},
		{
			name:  "Repeated term reported once",
			input: "badger badger badger",
			terms: []string{"badger"},
		},
		{
			name:  "Leet speak and internal punctuation",
			input: "Look at B.4.d.g.€r !",
			terms: []string{"badger"},
		},
		{
			name:  "Uppercase and extreme noise",
			input: "S-N-A-K-E is a B.A.D.G.E.R",
			terms: []string{"snake", "badger"},
		},
		{
			name:  "Accents and special characters (UTF-8)",
			input: "Un été avec un badger",
			terms: []string{"badger"},
		},
		{
			name:  "Word adjacent to trailing punctuation",
			input: "I love badger!",
			terms: []string{"badger"},
		},
		{
			name:  "Clean text",
			input: "Group chat is amazing",
			terms: nil,
		},
		{
			name:  "Empty string",
			input: "",
			terms: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms := mod.Scan(tt.input)
			req.Equal(tt.terms, terms, "input=%s", tt.input)
		})
	}
}

func TestModerator_CornerCases(t *testing.T) {
	req := require.New(t)

	// Given real noise and not Leet Speak associated
	dictionary := []string{"...", ",,,", "", "badger"}

	mod, err := NewModerator(dictionary)
	req.NoError(err)

	// Then the term is found
	req.Equal([]string{"badger"}, mod.Scan("The badger is safe"))

	// Then real noise matches nothing
	req.Nil(mod.Scan("Hello ..."))

	// And a watchlist of pure noise is rejected
	_, err = NewModerator([]string{"...", "  "})
	req.ErrorIs(err, errors.ErrEmptyWatchlist)
}

func TestModerator_DisguisedSpellings(t *testing.T) {
	req := require.New(t)

	// Given two spellings normalizing to the same pattern
	mod, err := NewModerator([]string{"scam", "sc4m"})
	req.NoError(err)

	// Then both inputs report the single normalized term
	req.Equal([]string{"scam"}, mod.Scan("this is a SCAM"))
	req.Equal([]string{"scam"}, mod.Scan("this is a s.c.4.m"))
}
