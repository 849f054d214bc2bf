package relay

import "sync"

// Locker serialises work per user ID. Waiters are served in the order
// they called Lock; idle entries are dropped.
type Locker struct {
	mu     sync.Mutex
	queues map[int64][]chan struct{}
}

func NewLocker() *Locker {
	return &Locker{queues: make(map[int64][]chan struct{})}
}

// Lock blocks until id is free and returns the matching unlock func.
// The head of a queue holds the lock.
func (l *Locker) Lock(id int64) func() {
	ready := make(chan struct{})

	l.mu.Lock()
	q := append(l.queues[id], ready)
	l.queues[id] = q
	l.mu.Unlock()

	if len(q) > 1 {
		<-ready
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.release(id) })
	}
}

func (l *Locker) release(id int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	q := l.queues[id][1:]
	if len(q) == 0 {
		delete(l.queues, id)
		return
	}
	l.queues[id] = q
	close(q[0])
}

func (l *Locker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queues)
}

// waiting counts the holder and the queued callers for id.
func (l *Locker) waiting(id int64) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queues[id])
}
