// Package moderation watches the broadcast medium for watchlisted terms.
// It never rewrites records: delivery stays byte-for-byte what the sender
// published, the watch only reports matches.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"

	"chatter-hub/errors"
)

type Moderator struct {
	matcher *goahocorasick.Machine
}

// NewModerator builds the Aho-Corasick automaton over the normalized
// watchlist. Terms that normalize to nothing (pure noise) are dropped;
// an effectively empty watchlist is an error.
func NewModerator(terms []string) (Moderator, error) {
	seen := make(map[string]struct{}, len(terms))
	var patterns [][]rune
	for _, term := range terms {
		normalized := normalizeRunes([]rune(term))
		if len(normalized) == 0 {
			continue
		}
		key := string(normalized)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		patterns = append(patterns, normalized)
	}
	if len(patterns) == 0 {
		return Moderator{}, errors.ErrEmptyWatchlist
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Moderator{}, err
	}
	return Moderator{matcher: m}, nil
}

// Scan reports the watchlist terms found in the text, normalized and
// deduplicated, in order of first appearance. Nil means a clean text.
func (m *Moderator) Scan(text string) []string {
	normalized := normalizeRunes([]rune(text))
	if len(normalized) == 0 {
		return nil
	}
	spans := m.matcher.MultiPatternSearch(normalized, false)
	if len(spans) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(spans))
	var terms []string
	for _, span := range spans {
		term := string(span.Word)
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}
	return terms
}

// normalizeRunes strips noise and simplifies Leet speak so that disguised
// spellings still match the watchlist.
func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune maps common Leet speak characters back to their standard alphabet counterparts.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

// isNoise identifies characters that should be ignored during the pattern matching phase.
func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
