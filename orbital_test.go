package gamess

import (
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// Restricted case: one set of eigenvectors, the F-type XXX label
// without an atom number reuses the previous atom, and the BOTH
// SET(S) guess line collapses Homos to one channel.
func TestReadMOs(t *testing.T) {
	data := parseString(t, ` TOTAL NUMBER OF ATOMS                          =    1
 NUMBER OF CARTESIAN GAUSSIAN BASIS FUNCTIONS =    3
 NUMBER OF OCCUPIED ORBITALS (ALPHA)          =    2
 NUMBER OF OCCUPIED ORBITALS (BETA )          =    2
     SYMMETRIES FOR INITIAL GUESS ORBITALS FOLLOW.   BOTH SET(S).
          EIGENVECTORS
          ------------

                      1          2          3
                   -0.9176     0.2846     0.4226
                     A1G        A1U        A1G
  1  C  1  S      0.600000   0.100000   0.200000
  2  C  1  X      0.500000  -0.200000   0.300000
  3  C     XXX    0.400000   0.300000  -0.400000
 ...... END OF RHF CALCULATION ......
`)
	wantE := [][]float64{{ev(-0.9176), ev(0.2846), ev(0.4226)}}
	if !reflect.DeepEqual(data.MOEnergies, wantE) {
		t.Errorf("got %v, wanted %v\n", data.MOEnergies, wantE)
	}
	wantS := [][]string{{"A1g", "A1u", "A1g"}}
	if !reflect.DeepEqual(data.MOSyms, wantS) {
		t.Errorf("got %v, wanted %v\n", data.MOSyms, wantS)
	}
	wantC := mat.NewDense(3, 3, []float64{
		0.6, 0.5, 0.4,
		0.1, -0.2, 0.3,
		0.2, 0.3, -0.4,
	})
	if len(data.MOCoeffs) != 1 || !mat.Equal(data.MOCoeffs[0], wantC) {
		t.Errorf("got %v, wanted [%v]\n", data.MOCoeffs, wantC)
	}
	if want := [][]int{{0, 1, 2}}; !reflect.DeepEqual(data.AtomBasis, want) {
		t.Errorf("got %v, wanted %v\n", data.AtomBasis, want)
	}
	wantN := []string{"C1_S", "C1_X", "C1_XXX"}
	if !reflect.DeepEqual(data.AONames, wantN) {
		t.Errorf("got %v, wanted %v\n", data.AONames, wantN)
	}
	if want := []int{1}; !reflect.DeepEqual(data.Homos, want) {
		t.Errorf("got %v, wanted %v\n", data.Homos, want)
	}
}

// Unrestricted case: a BETA SET follows the alpha eigenvectors and
// both homo indices survive.
func TestReadMOsBeta(t *testing.T) {
	data := parseString(t, ` TOTAL NUMBER OF ATOMS                          =    1
 NUMBER OF CARTESIAN GAUSSIAN BASIS FUNCTIONS =    2
 NUMBER OF OCCUPIED ORBITALS (ALPHA)          =    2
 NUMBER OF OCCUPIED ORBITALS (BETA )          =    1
          EIGENVECTORS
          ------------

                      1          2
                   -0.9176     0.2846
                     AG         BU
  1  HE 1  S      0.600000   0.100000
  2  HE 1  S      0.500000  -0.200000

 ----- BETA SET -----

          ------------
          EIGENVECTORS
          ------------

                      1          2
                   -0.5000     0.3000
                     AG         BU
  1  HE 1  S      0.610000   0.110000
  2  HE 1  S      0.510000  -0.210000
 ...... END OF UHF CALCULATION ......
`)
	if len(data.MOEnergies) != 2 || len(data.MOCoeffs) != 2 {
		t.Fatalf("got %d channels, wanted 2\n", len(data.MOEnergies))
	}
	wantE := [][]float64{
		{ev(-0.9176), ev(0.2846)},
		{ev(-0.5000), ev(0.3000)},
	}
	if !reflect.DeepEqual(data.MOEnergies, wantE) {
		t.Errorf("got %v, wanted %v\n", data.MOEnergies, wantE)
	}
	wantB := mat.NewDense(2, 2, []float64{
		0.61, 0.51,
		0.11, -0.21,
	})
	if !mat.Equal(data.MOCoeffs[Beta], wantB) {
		t.Errorf("got %v, wanted %v\n", data.MOCoeffs[Beta], wantB)
	}
	if want := []int{1, 0}; !reflect.DeepEqual(data.Homos, want) {
		t.Errorf("got %v, wanted %v\n", data.Homos, want)
	}
}
