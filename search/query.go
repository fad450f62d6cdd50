package search

import (
	"strconv"
	"strings"

	"chatter-hub/domain"
)

// Query is the parsed form of an operator search input. It decouples the
// raw shell text from what the index engine needs.
type Query struct {
	Terms   string
	GroupID domain.GroupID
	Limit   int
}

// ParseQuery extracts command-line style flags from a raw search input.
// Example: invoice overdue --group 81c2f3d4 --limit 5
// Unknown flags are dropped; everything else becomes search terms.
func ParseQuery(input string) Query {
	q := Query{Limit: DefaultSearchLimit}

	parts := strings.Fields(input)
	var terms []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			key := strings.TrimPrefix(part, "--")
			val := parts[i+1]

			switch key {
			case "group":
				q.GroupID = domain.GroupID(val)
			case "limit":
				if n, err := strconv.Atoi(val); err == nil && n > 0 {
					q.Limit = n
				}
			}
			i++ // Skip the value part in next iteration
			continue
		}

		terms = append(terms, part)
	}

	q.Terms = strings.Join(terms, " ")
	return q
}
