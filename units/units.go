// Package units carries the physical-unit tags and constants shared by
// every other mdforce package. It exists as its own leaf package purely
// to break what would otherwise be an import cycle between the root
// System type and the pairwise/specific interaction packages, both of
// which need to declare the unit they produce forces/energies in.
package units

// Unit tags a quantity's physical unit, or marks a system as unitless
// (UnitsNone). Tags are metadata carried next to a System or an
// Interaction, never wrapped around individual scalars: the hot path
// (pairwise kernels, the force/energy pipeline) is plain float64
// arithmetic throughout.
type Unit string

const (
	UnitsNone Unit = ""

	Nanometer        Unit = "nm"
	Picosecond       Unit = "ps"
	AtomicMassUnit   Unit = "u"
	KJPerMol         Unit = "kJ/mol"
	KJPerMolNm       Unit = "kJ/(mol*nm)"
	Kelvin           Unit = "K"
	ElementaryCharge Unit = "e"
)

// Physical constants, in the default unit set (nm, ps, u, kJ/mol, K, e).
const (
	// BoltzmannConstant is k_B in kJ·mol⁻¹·K⁻¹.
	BoltzmannConstant = 0.008314462618

	// CoulombConstant is k in kJ·mol⁻¹·nm·e⁻².
	CoulombConstant = 138.935458
)
