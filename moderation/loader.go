package moderation

import (
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"strings"

	"chatter-hub/errors"
)

// WatchlistData carries the result of the loading process including metadata for logging.
type WatchlistData struct {
	Terms     []string
	Languages []string
}

// WatchlistLoader reads watchlisted terms from embedded dictionary files.
type WatchlistLoader struct {
	fs embed.FS
}

func NewWatchlistLoader(f embed.FS) *WatchlistLoader {
	return &WatchlistLoader{fs: f}
}

// LoadAll scans the given directory path in the embedded FS, identifying .txt files
// as language dictionaries and parsing their contents into a unique list of terms.
func (l *WatchlistLoader) LoadAll(path string) (*WatchlistData, error) {
	entries, err := fs.ReadDir(l.fs, path)
	if err != nil {
		return nil, err
	}

	var languages []string
	uniqueTerms := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		// Track the language based on the filename (e.g., "fr.txt" -> "fr")
		lang := strings.TrimSuffix(entry.Name(), ".txt")
		languages = append(languages, lang)

		data, err := l.fs.ReadFile(path + "/" + entry.Name())
		if err != nil {
			return nil, err
		}

		// Use a scanner to handle different line endings (\n vs \r\n) correctly
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				uniqueTerms[line] = struct{}{}
			}
		}

		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(uniqueTerms) == 0 {
		return nil, errors.ErrEmptyWatchlist
	}

	terms := make([]string, 0, len(uniqueTerms))
	for t := range uniqueTerms {
		terms = append(terms, t)
	}

	return &WatchlistData{
		Terms:     terms,
		Languages: languages,
	}, nil
}
