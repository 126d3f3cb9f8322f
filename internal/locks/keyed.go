package locks

import "sync"

// Keyed hands out one mutex per key so that operations on the same product
// serialize while operations on different products proceed in parallel.
// Mutexes are created lazily and never discarded; the key space (product ids)
// is small enough that this is not a concern.
type Keyed struct {
	mus sync.Map // key: string -> value: *sync.Mutex
}

// NewKeyed creates an empty keyed mutex set.
func NewKeyed() *Keyed {
	return &Keyed{}
}

// Lock acquires the mutex for key, creating it on first use.
func (k *Keyed) Lock(key string) {
	mu, _ := k.mus.LoadOrStore(key, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
}

// Unlock releases the mutex for key. The key must have been locked first.
func (k *Keyed) Unlock(key string) {
	mu, ok := k.mus.Load(key)
	if !ok {
		panic("locks: unlock of unknown key " + key)
	}
	mu.(*sync.Mutex).Unlock()
}
