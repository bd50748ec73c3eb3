package input

// Bus is a synchronous Source fed by Publish.
// Handlers added while a batch is being delivered only see later batches;
// handlers removed mid-batch stop receiving immediately.
type Bus struct {
	nextID   int
	handlers []subscription
}

type subscription struct {
	id int
	h  Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h and returns a function that removes it.
// Calling the returned function more than once is a no-op.
func (b *Bus) Subscribe(h Handler) func() {
	b.nextID++
	id := b.nextID
	b.handlers = append(b.handlers, subscription{id: id, h: h})
	return func() { b.remove(id) }
}

func (b *Bus) remove(id int) {
	for i, s := range b.handlers {
		if s.id == id {
			b.handlers = append(b.handlers[:i:i], b.handlers[i+1:]...)
			return
		}
	}
}

// Publish delivers a batch of events in order to the handlers subscribed
// when the batch starts.
func (b *Bus) Publish(events ...Event) {
	snapshot := append([]subscription(nil), b.handlers...)
	for _, ev := range events {
		for _, s := range snapshot {
			if !b.active(s.id) {
				continue
			}
			s.h(ev)
		}
	}
}

func (b *Bus) active(id int) bool {
	for _, s := range b.handlers {
		if s.id == id {
			return true
		}
	}
	return false
}

// Len returns the number of active subscriptions.
func (b *Bus) Len() int {
	return len(b.handlers)
}
