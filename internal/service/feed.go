package service

import (
	"sync"
	"time"

	"personal_blog/internal/models"

	"github.com/google/uuid"
)

// Feed event types.
const (
	EventPostCreated = "POST_CREATED"
	EventPostUpdated = "POST_UPDATED"
	EventPostDeleted = "POST_DELETED"
)

// FeedEvent is a single post lifecycle notification.
type FeedEvent struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Post       models.Post `json:"post"`
}

const subscriberBuffer = 8

// FeedService is an in-process broadcast hub. Publishing never blocks:
// a subscriber whose buffer is full misses the event.
type FeedService struct {
	mu   sync.Mutex
	subs map[chan FeedEvent]struct{}
}

func NewFeedService() *FeedService {
	return &FeedService{subs: make(map[chan FeedEvent]struct{})}
}

// Subscribe registers a listener. The returned cancel func must be called
// when the listener goes away; it closes the channel.
func (f *FeedService) Subscribe() (<-chan FeedEvent, func()) {
	ch := make(chan FeedEvent, subscriberBuffer)

	f.mu.Lock()
	f.subs[ch] = struct{}{}
	f.mu.Unlock()

	cancel := func() {
		f.mu.Lock()
		if _, ok := f.subs[ch]; ok {
			delete(f.subs, ch)
			close(ch)
		}
		f.mu.Unlock()
	}
	return ch, cancel
}

// Publish fans the event out to all subscribers. ID and OccurredAt are set
// if empty.
func (f *FeedService) Publish(ev FeedEvent) {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	} else {
		ev.OccurredAt = ev.OccurredAt.UTC()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for ch := range f.subs {
		select {
		case ch <- ev:
		default: // slow subscriber, drop
		}
	}
}
