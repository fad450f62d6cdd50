package moderation

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/require"

	"chatter-hub/errors"
)

//go:embed testdata
var watchlistTestFS embed.FS

func TestWatchlistLoader_LoadAll(t *testing.T) {
	req := require.New(t)
	loader := NewWatchlistLoader(watchlistTestFS)

	// When loading the dictionaries
	data, err := loader.LoadAll("testdata/watchlist")
	req.NoError(err)

	// Then every language file contributes and terms are unique
	req.ElementsMatch([]string{"en", "fr"}, data.Languages)
	req.Contains(data.Terms, "scam")
	req.Contains(data.Terms, "arnaque")
	counts := make(map[string]int)
	for _, term := range data.Terms {
		counts[term]++
	}
	req.Equal(1, counts["scam"], "term listed in both files must appear once")
}

func TestWatchlistLoader_EmptyDictionaries(t *testing.T) {
	req := require.New(t)
	loader := NewWatchlistLoader(watchlistTestFS)

	_, err := loader.LoadAll("testdata/empty")
	req.ErrorIs(err, errors.ErrEmptyWatchlist)
}

func TestWatchlistLoader_MissingDirectory(t *testing.T) {
	req := require.New(t)
	loader := NewWatchlistLoader(watchlistTestFS)

	_, err := loader.LoadAll("testdata/nothing-here")
	req.Error(err)
}
