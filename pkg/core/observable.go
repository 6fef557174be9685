package core

import "sync"

// listenerList keeps listeners in subscription order. Removal is by id so
// unsubscribing during a notification does not disturb the ongoing loop.
type listenerList[F any] struct {
	mu     sync.Mutex
	nextID int
	items  []listenerEntry[F]
}

type listenerEntry[F any] struct {
	id int
	fn F
}

func (l *listenerList[F]) add(fn F) func() {
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.items = append(l.items, listenerEntry[F]{id: id, fn: fn})
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { l.remove(id) })
	}
}

func (l *listenerList[F]) remove(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, item := range l.items {
		if item.id == id {
			l.items = append(l.items[:i:i], l.items[i+1:]...)
			return
		}
	}
}

// snapshot copies the listener slice so callbacks run without the lock held.
func (l *listenerList[F]) snapshot() []F {
	l.mu.Lock()
	defer l.mu.Unlock()
	fns := make([]F, len(l.items))
	for i, item := range l.items {
		fns[i] = item.fn
	}
	return fns
}

func (l *listenerList[F]) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Observable holds a published value and notifies listeners synchronously,
// in subscription order, every time Set runs. Writes are never batched or
// coalesced, so setting the same value twice notifies twice. Use
// [NewObservableWithEquality] to suppress notifications for equal values.
//
// Reads are safe from any goroutine. Listeners run on the goroutine that
// called Set.
type Observable[T any] struct {
	mu        sync.RWMutex
	value     T
	equal     func(a, b T) bool
	listeners listenerList[func(T)]
}

// NewObservable creates an observable with an initial value.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// NewObservableWithEquality creates an observable that skips notification
// when equal reports the new value equals the current one.
func NewObservableWithEquality[T any](initial T, equal func(a, b T) bool) *Observable[T] {
	return &Observable[T]{value: initial, equal: equal}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Set stores value and notifies listeners.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	if o.equal != nil && o.equal(o.value, value) {
		o.mu.Unlock()
		return
	}
	o.value = value
	o.mu.Unlock()

	for _, fn := range o.listeners.snapshot() {
		fn(value)
	}
}

// Update applies transform to the current value and stores the result.
func (o *Observable[T]) Update(transform func(T) T) {
	o.Set(transform(o.Value()))
}

// AddListener registers fn and returns an unsubscribe function. The
// listener is not called with the current value; use [Observable.Bind] for
// that.
func (o *Observable[T]) AddListener(fn func(T)) func() {
	return o.listeners.add(fn)
}

// Bind calls fn with the current value, then on every change. It is the
// usual way for a view to mirror a published property.
func (o *Observable[T]) Bind(fn func(T)) func() {
	unsub := o.listeners.add(fn)
	fn(o.Value())
	return unsub
}

// ListenerCount returns the number of registered listeners.
func (o *Observable[T]) ListenerCount() int {
	return o.listeners.len()
}

// Signal broadcasts events that carry a payload but no stored value, such
// as animation start and stop requests.
type Signal[T any] struct {
	listeners listenerList[func(T)]
}

// NewSignal creates a signal with no listeners.
func NewSignal[T any]() *Signal[T] {
	return &Signal[T]{}
}

// Emit delivers event to every listener in subscription order.
func (s *Signal[T]) Emit(event T) {
	for _, fn := range s.listeners.snapshot() {
		fn(event)
	}
}

// AddListener registers fn and returns an unsubscribe function.
func (s *Signal[T]) AddListener(fn func(T)) func() {
	return s.listeners.add(fn)
}

// ListenerCount returns the number of registered listeners.
func (s *Signal[T]) ListenerCount() int {
	return s.listeners.len()
}

// Notifier broadcasts payload-free change events.
type Notifier struct {
	listeners listenerList[func()]
}

// NewNotifier creates a notifier with no listeners.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Notify calls every listener in subscription order.
func (n *Notifier) Notify() {
	for _, fn := range n.listeners.snapshot() {
		fn()
	}
}

// AddListener registers fn and returns an unsubscribe function.
func (n *Notifier) AddListener(fn func()) func() {
	return n.listeners.add(fn)
}

// ListenerCount returns the number of registered listeners.
func (n *Notifier) ListenerCount() int {
	return n.listeners.len()
}

// Listenable is implemented by anything that reports changes without a
// payload.
type Listenable interface {
	AddListener(fn func()) func()
}

// Subscriptions collects unsubscribe functions so a view can drop all of
// its bindings at once.
type Subscriptions struct {
	mu     sync.Mutex
	cancel []func()
}

// Add records unsubscribe functions.
func (s *Subscriptions) Add(unsub ...func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancel = append(s.cancel, unsub...)
}

// Dispose cancels every recorded subscription. It is safe to call twice.
func (s *Subscriptions) Dispose() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()
	for _, fn := range cancel {
		fn()
	}
}
