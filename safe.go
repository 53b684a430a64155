package region

import "sync"

// Locked is a mutex-protected handle on a Region for owners that share one
// region between goroutines. The Region itself never locks.
//
// Every method releases the mutex with defer, so an exhaustion panic raised
// while the lock is held propagates to the caller and leaves the lock usable.
type Locked struct {
	mu sync.Mutex
	r  *Region
}

// NewLocked wraps r. The caller must not use r directly afterwards.
func NewLocked(r *Region) *Locked {
	return &Locked{r: r}
}

// Allocate thread-safely bumps n bytes. See Region.Allocate.
func (l *Locked) Allocate(n int) []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Allocate(n)
}

// With runs fn with the lock held, for sequences that must not interleave
// with other goroutines, such as a Fits check followed by typed allocations.
func (l *Locked) With(fn func(r *Region)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.r)
}

// Fits thread-safely reports whether Allocate(n) would succeed.
func (l *Locked) Fits(n int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Fits(n)
}

// AllocatedBytes thread-safely returns the bytes consumed so far.
func (l *Locked) AllocatedBytes() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.AllocatedBytes()
}

// Remaining thread-safely returns the headroom left.
func (l *Locked) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Remaining()
}

// Capacity returns the reserved size. It never changes, so no lock is taken.
func (l *Locked) Capacity() int {
	return l.r.Capacity()
}

// End returns the address one past the block. Immutable, no lock is taken.
func (l *Locked) End() uintptr {
	return l.r.End()
}

// Current thread-safely returns the cursor address.
func (l *Locked) Current() uintptr {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Current()
}

// Stats thread-safely returns a snapshot of the region's usage.
func (l *Locked) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Stats()
}

// Release thread-safely returns the block to the system.
func (l *Locked) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Release()
}
