package bus

import "sync"

// Subscription is the cancel token returned by Subscribe.
type Subscription struct {
	id      uint64
	bus     *Bus
	topic   *topic
	family  string
	handler Handler

	mu    sync.Mutex
	queue []Event

	wake   chan struct{}
	done   chan struct{}
	exited chan struct{}
	once   sync.Once
}

func newSubscription(id uint64, b *Bus, t *topic, family string, h Handler) *Subscription {
	return &Subscription{
		id:      id,
		bus:     b,
		topic:   t,
		family:  family,
		handler: h,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		exited:  make(chan struct{}),
	}
}

// Topic returns the topic the subscription listens on.
func (s *Subscription) Topic() string {
	return s.topic.name
}

// Cancel stops delivery. It is idempotent and, once it returns, the handler
// is not running and will not be invoked again. Cancel must not be called
// synchronously from the subscription's own handler.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		if s.bus.remove(s) && s.bus.observer != nil {
			s.bus.observer.SubscriptionsChanged(-1)
		}
		close(s.done)
	})
	<-s.exited
}

// Done is closed once the subscription has been cancelled.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

func (s *Subscription) enqueue(evt Event) {
	s.mu.Lock()
	s.queue = append(s.queue, evt)
	s.mu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Subscription) next() (Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return Event{}, false
	}
	evt := s.queue[0]
	s.queue[0] = Event{}
	s.queue = s.queue[1:]
	return evt, true
}

func (s *Subscription) run() {
	defer close(s.exited)
	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
		}
		for {
			evt, ok := s.next()
			if !ok {
				break
			}
			select {
			case <-s.done:
				return
			default:
			}
			s.bus.deliver(s, evt)
		}
	}
}
