// Package components defines the ECS components for starfield entities.
package components

// Lateral is a star's offset from the view axis, fixed for its lifetime.
// Coordinates are centered: X in [-W/2, W/2], Y in [-H/2, H/2].
type Lateral struct {
	X, Y float32
}

// Depth is a star's distance from the viewer along the forward axis.
// Z stays above 1 while the star is alive; once it drops below 1 the
// star has passed the viewer plane and is respawned far away.
type Depth struct {
	Z float32
}
