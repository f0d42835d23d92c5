// Package events is a synchronous in-process publish/subscribe bus used to
// tell views that a setting or the transaction list changed.
package events

import "sync"

// Topic names a kind of change.
type Topic string

const (
	CurrencyChanged     Topic = "currency_changed"
	LanguageChanged     Topic = "language_changed"
	ThemeChanged        Topic = "theme_changed"
	TransactionsChanged Topic = "transactions_changed"
)

// Event carries the topic and, where useful, the new value
// (language code, theme name, currency symbol, transaction id).
type Event struct {
	Topic Topic
	Value string
}

// Handler reacts to an event. Handlers run on the publisher's goroutine.
type Handler func(Event)

// Publisher is the producer side of the bus.
type Publisher interface {
	Publish(Event)
}

type subscription struct {
	id      uint64
	handler Handler
}

// Bus delivers each event to the current subscribers of its topic, in the
// order they subscribed.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[Topic][]subscription
}

func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]subscription)}
}

// Subscribe registers h for topic and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (b *Bus) Subscribe(topic Topic, h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs[topic] = append(b.subs[topic], subscription{id: id, handler: h})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := b.subs[topic]
		for i, s := range list {
			if s.id == id {
				b.subs[topic] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// Publish calls every handler subscribed to e.Topic at the time of the call.
// Handlers may subscribe or unsubscribe while being called.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	snapshot := append([]subscription(nil), b.subs[e.Topic]...)
	b.mu.Unlock()

	for _, s := range snapshot {
		s.handler(e)
	}
}

// Len returns the number of handlers subscribed to topic.
func (b *Bus) Len(topic Topic) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[topic])
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(Event) {}
