// Package notify provides change notification for the active theme.
//
// Components subscribe to theme changes and receive callbacks when a
// field is set, a new theme is installed, or the defaults are restored.
package notify

import (
	"sync"
)

// ChangeType represents the kind of theme change.
type ChangeType int

const (
	// ChangeSet indicates a single field was set.
	ChangeSet ChangeType = iota

	// ChangeInstall indicates a whole theme was installed.
	ChangeInstall

	// ChangeReset indicates the defaults were restored.
	ChangeReset
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeSet:
		return "set"
	case ChangeInstall:
		return "install"
	case ChangeReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Change represents a theme change event.
type Change struct {
	// Path is the dot-separated path to the changed field.
	// Empty for install and reset events.
	Path string

	// Type is the kind of change.
	Type ChangeType

	// OldValue is the previous value (nil for installs).
	OldValue any

	// NewValue is the new value.
	NewValue any

	// Source identifies where the change came from, e.g. a preset key
	// or file path for installs.
	Source string
}

// Observer is called when theme changes occur.
type Observer func(change Change)

// Subscription represents an active observer registration.
type Subscription struct {
	id       uint64
	path     string
	notifier *Notifier
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

// Notifier manages theme change subscriptions.
type Notifier struct {
	mu sync.RWMutex

	globalObservers map[uint64]Observer
	pathObservers   map[string]map[uint64]Observer
	nextID          uint64

	async  bool
	buffer chan Change
	done   chan struct{}
	wg     sync.WaitGroup
	closed bool
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithAsync enables asynchronous notification delivery.
func WithAsync(bufferSize int) Option {
	return func(n *Notifier) {
		if bufferSize > 0 {
			n.async = true
			n.buffer = make(chan Change, bufferSize)
		}
	}
}

// New creates a new Notifier.
func New(opts ...Option) *Notifier {
	n := &Notifier{
		globalObservers: make(map[uint64]Observer),
		pathObservers:   make(map[string]map[uint64]Observer),
		done:            make(chan struct{}),
	}

	for _, opt := range opts {
		opt(n)
	}

	if n.async {
		n.wg.Add(1)
		go n.processAsync()
	}

	return n
}

// Subscribe registers an observer for all changes.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.globalObservers[id] = observer

	return &Subscription{id: id, notifier: n}
}

// SubscribePath registers an observer for changes to a specific path.
// The observer is called for exact matches and for child paths:
// subscribing to "font" receives changes to "font.size".
func (n *Notifier) SubscribePath(path string, observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++

	if n.pathObservers[path] == nil {
		n.pathObservers[path] = make(map[uint64]Observer)
	}
	n.pathObservers[path][id] = observer

	return &Subscription{id: id, path: path, notifier: n}
}

// Notify sends a change notification to all relevant observers.
func (n *Notifier) Notify(change Change) {
	n.mu.RLock()
	if n.closed {
		n.mu.RUnlock()
		return
	}
	n.mu.RUnlock()

	if n.async {
		select {
		case n.buffer <- change:
		case <-n.done:
		}
		return
	}

	n.deliverChange(change)
}

// NotifySet is a convenience method for single-field changes.
func (n *Notifier) NotifySet(path string, oldValue, newValue any, source string) {
	n.Notify(Change{
		Path:     path,
		Type:     ChangeSet,
		OldValue: oldValue,
		NewValue: newValue,
		Source:   source,
	})
}

// NotifyInstall is a convenience method for whole-theme installs.
func (n *Notifier) NotifyInstall(themeName, source string) {
	n.Notify(Change{
		Type:     ChangeInstall,
		NewValue: themeName,
		Source:   source,
	})
}

// NotifyReset is a convenience method for defaults restoration.
func (n *Notifier) NotifyReset(source string) {
	n.Notify(Change{
		Type:   ChangeReset,
		Source: source,
	})
}

// Close shuts down the notifier. It is safe to call Close multiple times.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	n.mu.Unlock()

	close(n.done)
	n.wg.Wait()
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.globalObservers, id)

	for path, observers := range n.pathObservers {
		delete(observers, id)
		if len(observers) == 0 {
			delete(n.pathObservers, path)
		}
	}
}

// deliverChange sends a change to all matching observers.
func (n *Notifier) deliverChange(change Change) {
	n.mu.RLock()

	var observers []Observer

	for _, obs := range n.globalObservers {
		observers = append(observers, obs)
	}

	if change.Path != "" {
		if pathObs, ok := n.pathObservers[change.Path]; ok {
			for _, obs := range pathObs {
				observers = append(observers, obs)
			}
		}

		// Parent subscriptions see child changes.
		for path, pathObs := range n.pathObservers {
			if isParentPath(path, change.Path) {
				for _, obs := range pathObs {
					observers = append(observers, obs)
				}
			}
		}
	} else {
		// Install and reset events touch every field, so every path
		// observer hears about them.
		for _, pathObs := range n.pathObservers {
			for _, obs := range pathObs {
				observers = append(observers, obs)
			}
		}
	}

	n.mu.RUnlock()

	// Call observers outside the lock.
	for _, obs := range observers {
		obs(change)
	}
}

func (n *Notifier) processAsync() {
	defer n.wg.Done()

	for {
		select {
		case change := <-n.buffer:
			n.deliverChange(change)
		case <-n.done:
			// Drain remaining buffered changes
			for {
				select {
				case change := <-n.buffer:
					n.deliverChange(change)
				default:
					return
				}
			}
		}
	}
}

// isParentPath checks if parent is a parent path of child.
// e.g. "font" is parent of "font.size".
func isParentPath(parent, child string) bool {
	if len(parent) >= len(child) {
		return false
	}
	if parent == "" {
		return true
	}
	return child[:len(parent)] == parent && child[len(parent)] == '.'
}
