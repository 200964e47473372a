package auth

import (
	"log/slog"
	"sync"

	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/usecase/interfaces"
)

const subscriberBuffer = 16

type sessionChange struct {
	event   entities.AuthEvent
	session *entities.AuthSession
}

type subscriber struct {
	ch   chan sessionChange
	done chan struct{}
}

// Broadcaster delivers session changes to every subscriber on its own
// goroutine, so a slow listener never blocks Publish. Changes for a
// subscriber whose buffer is full are dropped.
type Broadcaster struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]*subscriber
}

var _ interfaces.ISessionEvents = (*Broadcaster)(nil)

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]*subscriber)}
}

func (b *Broadcaster) Publish(event entities.AuthEvent, session *entities.AuthSession) {
	var snapshot *entities.AuthSession
	if session != nil {
		s := *session
		snapshot = &s
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for id, sub := range b.subs {
		select {
		case sub.ch <- sessionChange{event: event, session: snapshot}:
		default:
			slog.Warn("session listener lagging, change dropped", "subscriber", id, "event", event)
		}
	}
}

// Subscribe starts delivering changes to listener. The returned func stops
// delivery and waits for the listener goroutine to finish; do not call it
// from inside the listener.
func (b *Broadcaster) Subscribe(listener interfaces.SessionListener) (unsubscribe func()) {
	sub := &subscriber{
		ch:   make(chan sessionChange, subscriberBuffer),
		done: make(chan struct{}),
	}
	go func() {
		defer close(sub.done)
		for change := range sub.ch {
			listener(change.event, change.session)
		}
	}()

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = sub
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.remove(id)
			<-sub.done
		})
	}
}

func (b *Broadcaster) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if sub, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(sub.ch)
	}
}

// Close stops every subscriber.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	subs := b.subs
	b.subs = make(map[int]*subscriber)
	b.mu.Unlock()

	for _, sub := range subs {
		close(sub.ch)
		<-sub.done
	}
}
