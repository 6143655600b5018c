package styles

// pool assigns indexes to unique values in first seen order.
type pool[K comparable] struct {
	index map[K]int
	items []K
}

func newPool[K comparable](reserved ...K) *pool[K] {
	p := &pool[K]{index: make(map[K]int)}
	for _, k := range reserved {
		p.add(k)
	}
	return p
}

// add returns index of k, inserting it when necessary. The second value
// reports whether k was seen for the first time.
func (p *pool[K]) add(k K) (int, bool) {
	if i, ok := p.index[k]; ok {
		return i, false
	}
	i := len(p.items)
	p.index[k] = i
	p.items = append(p.items, k)
	return i, true
}

func (p *pool[K]) len() int {
	return len(p.items)
}
