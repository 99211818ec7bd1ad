package sim

//go:generate go tool mockgen -destination=./mocks/host_mock.go -package=mocks . Host

// Host receives visual state changes. The simulation owns positions and
// velocities; the host only learns what to show.
type Host interface {
	// SetTexture selects the symbolic texture of an entity.
	SetTexture(ref EntityRef, texture string)
	// SetVisible shows or hides an entity. Recycled entities are hidden.
	SetVisible(ref EntityRef, visible bool)
}

// NopHost ignores every call.
type NopHost struct{}

// SetTexture implements Host.
func (NopHost) SetTexture(EntityRef, string) {}

// SetVisible implements Host.
func (NopHost) SetVisible(EntityRef, bool) {}
