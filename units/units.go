// Package units converts between the units found in quantum chemistry
// output files. Only the pairs actually requested by the parser are
// tabulated; asking for any other pair is an error.
package units

import "fmt"

// conversion factors, CODATA 2002
const (
	hartreeToEv = 27.2113845
	bohrToAng   = 0.529177
	hartreeToCm = 219474.6
	// Debye^2/amu-Angstrom^2 -> km/mol for IR intensities
	debyeToKm = 42.255
)

var table = map[string]float64{
	"hartree=>eV":                    hartreeToEv,
	"hartree=>cm-1":                  hartreeToCm,
	"bohr=>Angstrom":                 bohrToAng,
	"Debye^2/amu-Angstrom^2=>km/mol": debyeToKm,
}

// Convert converts val from the unit named by from to the unit named
// by to. The unit pair must appear in the conversion table.
func Convert(val float64, from, to string) (float64, error) {
	fac, ok := table[from+"=>"+to]
	if !ok {
		return 0, fmt.Errorf("units: no conversion from %q to %q", from, to)
	}
	return val * fac, nil
}
