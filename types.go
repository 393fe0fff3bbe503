package gamess

import "gonum.org/v1/gonum/mat"

// Spin channels for orbital-indexed data. Beta is only meaningful for
// unrestricted calculations and for determinant-based CI output.
const (
	Alpha = iota
	Beta
)

// A Shell is one group of primitive Gaussians on an atom: a symmetry
// type (S, P, D, F, or G) and the (exponent, coefficient) pair of each
// primitive. An "L" (SP) shell in the log becomes separate S and P
// Shells sharing exponents.
type Shell struct {
	Type  string
	Prims [][2]float64
}

// An ETSec is one one-electron excitation contribution to an excited
// state: an occupied orbital, a virtual orbital, and the CI
// coefficient. Orbital indices are 0-based. The spin fields are Alpha
// unless the CI Hamiltonian is determinant-based and the log marks the
// contribution BETA.
type ETSec struct {
	From, FromSpin int
	To, ToSpin     int
	Coeff          float64
}

// Data is the structured result of parsing one GAMESS log. A field
// holds its zero value (nil for slices and matrices) until the section
// that populates it has been seen. Once a parse finishes, the Data is
// read-only.
type Data struct {
	// Natom is the number of atoms and Atomnos their atomic
	// numbers in input order
	Natom   int
	Atomnos []int
	// Charge and Mult are the total charge and spin multiplicity
	Charge int
	Mult   int
	// AtomCoords holds one Natom x 3 matrix per captured geometry,
	// in Angstroms
	AtomCoords []*mat.Dense

	// SCFEnergies has one total SCF energy per step, in eV
	SCFEnergies []float64
	// MPEnergies has one entry per step; each entry lists the
	// Moller-Plesset corrected energies in increasing order (MP2,
	// then MP3 and MP4 when present), in eV
	MPEnergies [][]float64
	// CCEnergies has the highest coupled-cluster energy found per
	// step, in eV
	CCEnergies []float64

	// SCFTargets holds the density convergence threshold of each
	// SCF run; SCFValues the per-iteration density change
	SCFTargets [][]float64
	SCFValues  [][]float64
	// GeoTargets is [rms, max] gradient thresholds, max = 3 x rms;
	// GeoValues is [max, rms] gradient per optimization step
	GeoTargets []float64
	GeoValues  [][]float64

	// CIHamTyp is the CI Hamiltonian type: "none", "saps", or
	// "dets". It controls the normalization and spin tagging of
	// ETSecs.
	CIHamTyp string
	// ETEnergies holds excitation energies in cm-1, ETSyms the
	// spin-symmetry label per state, ETSecs the excitation
	// contributions per state, and ETOscs the oscillator strengths
	ETEnergies []float64
	ETSyms     []string
	ETSecs     [][]ETSec
	ETOscs     []float64

	// VibFreqs holds harmonic frequencies in cm-1, imaginary modes
	// negated; VibIRs IR intensities in km/mol; VibRamans Raman
	// activities when present; VibDisps one Natom x 3 Cartesian
	// displacement matrix per mode. Rotation and translation modes
	// are excluded from all four.
	VibFreqs  []float64
	VibIRs    []float64
	VibRamans []float64
	VibDisps  []*mat.Dense

	// GBasis lists the Shells of each atom in atom order
	GBasis [][]Shell

	// NBasis is the basis set size; NMO the number of molecular
	// orbitals, equal to NBasis unless the log reports a reduced
	// variation space
	NBasis int
	NMO    int
	// MOEnergies (eV) and MOSyms have one slice per spin channel;
	// MOCoeffs one NMO x NBasis matrix per channel
	MOEnergies [][]float64
	MOSyms     [][]string
	MOCoeffs   []*mat.Dense
	// Homos is the 0-based index of the highest occupied orbital
	// per channel, collapsed to one entry once the run is confirmed
	// restricted
	Homos []int
	// AtomBasis lists the basis function indices on each atom;
	// AONames a canonical name per basis function
	AtomBasis [][]int
	AONames   []string

	// AOOverlaps is the NBasis x NBasis overlap matrix
	AOOverlaps *mat.SymDense
	// CoreElectrons counts the electrons replaced by an ECP on
	// each atom
	CoreElectrons []int
}
