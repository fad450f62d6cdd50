package event

import (
	"chatter-hub/errors"
	"log/slog"
)

// PublishedHandler counts records accepted onto the medium, as seen from
// the event stream. Cross-checking this total against the delivery stats
// reveals dropped events.
type PublishedHandler struct {
	log     *slog.Logger
	counter *Counter
}

func NewPublishedHandler(log *slog.Logger, counter *Counter) *PublishedHandler {
	return &PublishedHandler{log: log, counter: counter}
}

func (p *PublishedHandler) Handle(event Event) {
	if event.Type != MessagePublishedType {
		return
	}
	if _, ok := event.Payload.(MessagePublished); !ok {
		p.log.Error(errors.ErrInvalidPayload.Error())
		return
	}
	p.counter.Increment(MessagePublishedType)
}
