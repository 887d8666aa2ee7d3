package parameter

// System update priorities, lower runs first. The tick contract depends
// on physics running before collision and both before the reactive
// systems; renumber with care.
const (
	PriorityPhysics   = 10
	PriorityCollision = 20
	PriorityScoring   = 30
	PrioritySpawning  = 40
)
