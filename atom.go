package md

// Atom is an immutable per-step record of the intrinsic parameters of a
// particle: mass, charge, and the Lennard-Jones diameter/well-depth pair
// used by every pairwise kernel that needs them. Atoms never carry
// position or velocity — those live in System's coordinate/velocity
// slices, indexed in lock-step with the Atom slice.
type Atom struct {
	Mass    float64
	Charge  float64
	Sigma   float64 // σ, LJ diameter
	Epsilon float64 // ϵ, LJ well depth
	Solute  bool
}
