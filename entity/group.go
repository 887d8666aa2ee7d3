package entity

// Group owns every live entity of one type. Storage is a dense slice
// with an id index; removal swap-deletes so destruction is immediate and
// O(1), which is what keeps the at-most-once collision resolution
// invariant cheap to enforce. Iteration order is slice order:
// deterministic given the same insert/remove sequence.
type Group struct {
	entities []*Entity
	index    map[ID]int
}

// NewGroup creates an empty group
func NewGroup() *Group {
	return &Group{index: make(map[ID]int)}
}

// Add inserts an entity; an entity with a duplicate id is rejected
func (g *Group) Add(e *Entity) bool {
	if _, exists := g.index[e.ID]; exists {
		return false
	}
	g.index[e.ID] = len(g.entities)
	g.entities = append(g.entities, e)
	return true
}

// Get returns the entity by id
func (g *Group) Get(id ID) (*Entity, bool) {
	i, ok := g.index[id]
	if !ok {
		return nil, false
	}
	return g.entities[i], true
}

// Has reports membership
func (g *Group) Has(id ID) bool {
	_, ok := g.index[id]
	return ok
}

// Remove swap-deletes the entity. The caller loses any claim on it; a
// removed entity must not be re-tested in the same resolution pass.
func (g *Group) Remove(id ID) bool {
	i, ok := g.index[id]
	if !ok {
		return false
	}
	last := len(g.entities) - 1
	if i != last {
		moved := g.entities[last]
		g.entities[i] = moved
		g.index[moved.ID] = i
	}
	g.entities = g.entities[:last]
	delete(g.index, id)
	return true
}

// Len returns the number of live entities
func (g *Group) Len() int {
	return len(g.entities)
}

// At returns the entity at slice position i. Valid until the next
// mutation; used by the collision pass which manages indices itself.
func (g *Group) At(i int) *Entity {
	return g.entities[i]
}

// Each calls fn for every entity in order. fn must not mutate the group;
// passes that remove use index iteration via Len/At instead.
func (g *Group) Each(fn func(*Entity)) {
	for _, e := range g.entities {
		fn(e)
	}
}

// Clear drops all entities
func (g *Group) Clear() {
	g.entities = g.entities[:0]
	for id := range g.index {
		delete(g.index, id)
	}
}
