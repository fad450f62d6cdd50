// Package internal hosts the HTTP inspect page, a read-only window over
// the inbox store for debugging and operations.
package internal

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

// InspectRow is one rendered line of the inspect table.
type InspectRow struct {
	Key       string
	Recipient string
	Group     string
	Sender    string
	Timestamp string
	Body      string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// StartDebugServer serves the inspect page in the background. It never
// blocks and failures to bind only surface as an unreachable page.
func StartDebugServer(db *badger.DB, port int, endpoint string, mapper RowMapper, statsProvider StatsProvider) {
	mux := http.NewServeMux()
	mux.Handle(endpoint, Handler(db, mapper, statsProvider))

	go func() {
		// Écoute sur toutes les interfaces pour permettre l'accès réseau
		_ = http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), mux)
	}()
}

// Handler renders every key under the requested prefix (default "inbox:")
// through the mapper, together with the stats block.
func Handler(db *badger.DB, mapper RowMapper, statsProvider StatsProvider) http.Handler {
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))
	if mapper == nil {
		mapper = InboxMapper
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "inbox:"
		}

		data := PageData{
			Prefix: prefix,
			Stats:  make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapper(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})
}

// InboxMapper understands the inbox key layout
// "inbox:{recipient}:{timestamp}:{index}" and its JSON value. Foreign keys
// fall back to a raw size line so the page never breaks on them.
func InboxMapper(key string, val []byte) InspectRow {
	parts := strings.Split(key, ":")
	row := InspectRow{
		Key:       key,
		Recipient: "--------",
		Group:     "-",
		Sender:    "-",
		Timestamp: "--:--:--",
		Body:      "Size: " + strconv.Itoa(len(val)) + " bytes",
	}

	if len(parts) >= 4 {
		row.Recipient = shortID(parts[1])
		if tsNano, err := strconv.ParseInt(parts[2], 10, 64); err == nil {
			row.Timestamp = time.Unix(0, tsNano).Format("15:04:05")
		}
	}

	var stored struct {
		GroupID  string `json:"group_id"`
		SenderID string `json:"sender_id"`
		Body     string `json:"body"`
	}
	if err := json.Unmarshal(val, &stored); err == nil && stored.Body != "" {
		row.Group = shortID(stored.GroupID)
		row.Sender = shortID(stored.SenderID)
		row.Body = stored.Body
	}
	return row
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
