package component

// Projectile moves at a constant velocity (world units per second).
type Projectile struct {
	VX float64
	VY float64
}

var ProjectileComponent = NewComponent[Projectile]()
