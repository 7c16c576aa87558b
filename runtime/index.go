package runtime

import "sync"

type Set[V comparable] map[V]struct{}

// memberIndex maps a key to the set of values filed under it.
// Every key owns its own lock, so operations on different keys never contend.
// An entry whose set becomes empty is removed from the index.
type memberIndex[K comparable, V comparable] struct {
	entries sync.Map // K -> *memberSet[V]
}

type memberSet[V comparable] struct {
	mu      sync.Mutex
	members Set[V]
	// dead is set once the entry has been unlinked from the index.
	// Writers holding a stale pointer must reload.
	dead bool
}

func (x *memberIndex[K, V]) load(key K) (*memberSet[V], bool) {
	v, ok := x.entries.Load(key)
	if !ok {
		return nil, false
	}
	return v.(*memberSet[V]), true
}

func (x *memberIndex[K, V]) add(key K, value V) {
	for {
		s, ok := x.load(key)
		if !ok {
			v, _ := x.entries.LoadOrStore(key, &memberSet[V]{members: make(Set[V])})
			s = v.(*memberSet[V])
		}
		s.mu.Lock()
		if s.dead {
			s.mu.Unlock()
			continue
		}
		s.members[value] = struct{}{}
		s.mu.Unlock()
		return
	}
}

// remove reports whether value was present. Removing from an unknown key is a no-op.
func (x *memberIndex[K, V]) remove(key K, value V) bool {
	for {
		s, ok := x.load(key)
		if !ok {
			return false
		}
		s.mu.Lock()
		if s.dead {
			s.mu.Unlock()
			continue
		}
		_, had := s.members[value]
		delete(s.members, value)
		if len(s.members) == 0 {
			s.dead = true
			x.entries.CompareAndDelete(key, s)
		}
		s.mu.Unlock()
		return had
	}
}

// drain unlinks the whole entry and returns what it held.
func (x *memberIndex[K, V]) drain(key K) []V {
	for {
		s, ok := x.load(key)
		if !ok {
			return nil
		}
		s.mu.Lock()
		if s.dead {
			s.mu.Unlock()
			continue
		}
		s.dead = true
		x.entries.CompareAndDelete(key, s)
		values := s.snapshot()
		s.mu.Unlock()
		return values
	}
}

func (x *memberIndex[K, V]) members(key K) []V {
	s, ok := x.load(key)
	if !ok {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (x *memberIndex[K, V]) contains(key K, value V) bool {
	s, ok := x.load(key)
	if !ok {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, found := s.members[value]
	return found
}

func (x *memberIndex[K, V]) len() int {
	n := 0
	x.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// snapshot must be called with mu held.
func (s *memberSet[V]) snapshot() []V {
	out := make([]V, 0, len(s.members))
	for v := range s.members {
		out = append(out, v)
	}
	return out
}
