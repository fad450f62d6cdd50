// Package search maintains a full-text view of delivered inboxes.
// The badger inbox stays the source of truth; this index is a lookup
// convenience and can always be rebuilt from it.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"

	"chatter-hub/domain"
)

// DefaultSearchLimit caps result pages when the caller does not choose one.
const DefaultSearchLimit = 20

// Hit is one delivered entry matched by a query.
type Hit struct {
	GroupID  domain.GroupID
	SenderID domain.ChatterID
	Body     string
	At       time.Time
	Score    float64
}

// InboxIndex mirrors delivered entries into a bluge index so a chatter's
// history can be searched by content. Writes from concurrent delivery
// loops are serialized on the writer.
type InboxIndex struct {
	mu     sync.Mutex
	writer *bluge.Writer
	log    *slog.Logger
}

func NewInboxIndex(writer *bluge.Writer, log *slog.Logger) *InboxIndex {
	return &InboxIndex{writer: writer, log: log}
}

// Add indexes one delivered batch for one recipient.
func (ix *InboxIndex) Add(recipient domain.ChatterID, entries []domain.InboxEntry) error {
	if len(entries) == 0 {
		return nil
	}
	at := time.Now().UTC()
	batch := bluge.NewBatch()
	for _, entry := range entries {
		doc := bluge.NewDocument(uuid.NewString()).
			AddField(bluge.NewKeywordField("recipient", string(recipient)).StoreValue()).
			AddField(bluge.NewKeywordField("group", string(entry.GroupID)).StoreValue()).
			AddField(bluge.NewKeywordField("sender", string(entry.SenderID)).StoreValue()).
			AddField(bluge.NewTextField("body", entry.Body).StoreValue()).
			AddField(bluge.NewStoredOnlyField("at", []byte(at.Format(time.RFC3339Nano))))
		batch.Update(doc.ID(), doc)
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.writer.Batch(batch)
}

// Search returns the recipient's best matching entries for a parsed
// query. Results never cross recipients: the query is anchored on the
// recipient keyword field. A group filter narrows further when set.
func (ix *InboxIndex) Search(ctx context.Context, recipient domain.ChatterID, q Query) ([]Hit, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	reader, err := ix.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("opening index reader: %w", err)
	}
	defer reader.Close()

	boolean := bluge.NewBooleanQuery().
		AddMust(bluge.NewTermQuery(string(recipient)).SetField("recipient")).
		AddMust(bluge.NewMatchQuery(q.Terms).SetField("body"))
	if q.GroupID != "" {
		boolean.AddMust(bluge.NewTermQuery(string(q.GroupID)).SetField("group"))
	}
	request := bluge.NewTopNSearch(limit, boolean)

	return collectHits(ctx, reader, request)
}

func collectHits(ctx context.Context, reader *bluge.Reader, request bluge.SearchRequest) ([]Hit, error) {
	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("searching inbox index: %w", err)
	}

	var hits []Hit
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		hit := Hit{Score: match.Score}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "group":
				hit.GroupID = domain.GroupID(value)
			case "sender":
				hit.SenderID = domain.ChatterID(value)
			case "body":
				hit.Body = string(value)
			case "at":
				if at, err := time.Parse(time.RFC3339Nano, string(value)); err == nil {
					hit.At = at
				}
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		hits = append(hits, hit)
	}
	return hits, nil
}
