package sim

// Handle addresses a slot in a Pool. Gen changes every time the slot is
// released, so a handle kept past its entity's lifetime stops resolving.
type Handle struct {
	Index int
	Gen   uint32
}

// Pool is a fixed-capacity arena of reusable T values with free-list
// recycling. Acquire never allocates after construction.
type Pool[T any] struct {
	items  []T
	gens   []uint32
	active []bool
	free   []int // stack of free slot indices
	count  int
	reset  func(*T)
}

// NewPool creates a pool of the given capacity. reset, if non-nil, is
// applied to a slot each time it is acquired.
func NewPool[T any](capacity int, reset func(*T)) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	p := &Pool[T]{
		items:  make([]T, capacity),
		gens:   make([]uint32, capacity),
		active: make([]bool, capacity),
		free:   make([]int, 0, capacity),
		reset:  reset,
	}
	// Push in reverse so slot 0 is handed out first.
	for i := capacity - 1; i >= 0; i-- {
		p.free = append(p.free, i)
	}
	return p
}

// Acquire activates a free slot. It returns ok=false, and changes nothing,
// when every slot is active.
func (p *Pool[T]) Acquire() (Handle, *T, bool) {
	n := len(p.free)
	if n == 0 {
		return Handle{}, nil, false
	}
	idx := p.free[n-1]
	p.free = p.free[:n-1]
	p.active[idx] = true
	p.count++

	item := &p.items[idx]
	if p.reset != nil {
		p.reset(item)
	}
	return Handle{Index: idx, Gen: p.gens[idx]}, item, true
}

// Release deactivates the slot behind h and returns it to the free list.
// Stale or inactive handles are ignored and report false.
func (p *Pool[T]) Release(h Handle) bool {
	if !p.Alive(h) {
		return false
	}
	p.active[h.Index] = false
	p.gens[h.Index]++
	p.count--
	p.free = append(p.free, h.Index)
	return true
}

// Alive reports whether h refers to a currently active slot.
func (p *Pool[T]) Alive(h Handle) bool {
	if h.Index < 0 || h.Index >= len(p.items) {
		return false
	}
	return p.active[h.Index] && p.gens[h.Index] == h.Gen
}

// Get returns the value behind h if it is still alive.
func (p *Pool[T]) Get(h Handle) (*T, bool) {
	if !p.Alive(h) {
		return nil, false
	}
	return &p.items[h.Index], true
}

// Active returns the number of active slots.
func (p *Pool[T]) Active() int {
	return p.count
}

// Cap returns the fixed capacity.
func (p *Pool[T]) Cap() int {
	return len(p.items)
}

// Full reports whether no slot is free.
func (p *Pool[T]) Full() bool {
	return len(p.free) == 0
}

// Each calls fn for every active slot in index order. fn may release the
// slot it is given; it must not acquire.
func (p *Pool[T]) Each(fn func(h Handle, item *T)) {
	for i := range p.items {
		if !p.active[i] {
			continue
		}
		fn(Handle{Index: i, Gen: p.gens[i]}, &p.items[i])
	}
}

// Clear releases every slot and restores the initial free-list order, so a
// cleared pool hands out slots exactly like a new one.
func (p *Pool[T]) Clear() {
	p.free = p.free[:0]
	for i := len(p.items) - 1; i >= 0; i-- {
		if p.active[i] {
			p.active[i] = false
			p.gens[i]++
		}
		p.free = append(p.free, i)
	}
	p.count = 0
}
