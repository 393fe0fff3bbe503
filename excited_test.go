package gamess

import (
	"math"
	"reflect"
	"testing"

	"brent/gamess/units"
)

func cm(h float64) float64 {
	v, err := units.Convert(h, "hartree", "cm-1")
	if err != nil {
		panic(err)
	}
	return v
}

func TestReadETEnergies(t *testing.T) {
	data := parseString(t, `          EXCITATION ENERGIES
 STATE       HARTREE        EV
 ------------------------------------
   1   -75.9347823155     2.532
   2   -75.8934567890     3.657

`)
	want := []float64{cm(-75.9347823155), cm(-75.8934567890)}
	if !reflect.DeepEqual(data.ETEnergies, want) {
		t.Errorf("got %v, wanted %v\n", data.ETEnergies, want)
	}
}

func TestReadETSecsSaps(t *testing.T) {
	data := parseString(t, `        RESULTS FROM SPIN-ADAPTED ANTISYMMETRIZED PRODUCT (SAPS) BASED CI-SINGLES
 EXCITED STATE   1  ENERGY=      -76.0273555675  S =  0.0  SPACE SYM = A2
 filler
 filler
 filler
 filler
 filler
          1          6        0.989240
          3          7       -0.104326
 ----------------------------------------------
`)
	if data.CIHamTyp != "saps" {
		t.Errorf("got %q, wanted %q\n", data.CIHamTyp, "saps")
	}
	if want := []string{"Singlet-A2"}; !reflect.DeepEqual(data.ETSyms, want) {
		t.Errorf("got %v, wanted %v\n", data.ETSyms, want)
	}
	want := [][]ETSec{{
		{From: 0, FromSpin: Alpha, To: 5, ToSpin: Alpha,
			Coeff: 0.989240 / math.Sqrt2},
		{From: 2, FromSpin: Alpha, To: 6, ToSpin: Alpha,
			Coeff: -0.104326 / math.Sqrt2},
	}}
	if !reflect.DeepEqual(data.ETSecs, want) {
		t.Errorf("got %v, wanted %v\n", data.ETSecs, want)
	}
}

func TestReadETSecsDets(t *testing.T) {
	data := parseString(t, `        RESULTS FROM DETERMINANT BASED ATOMIC ORBITAL CI-SINGLES
 EXCITED STATE   1  ENERGY=      -76.0273555675  S =  1.0  SPACE SYM = B1
 filler
 filler
 filler
 filler
 filler
 ALPHA          1          6        0.701053
 BETA           1          6       -0.701053
 ----------------------------------------------
`)
	if data.CIHamTyp != "dets" {
		t.Errorf("got %q, wanted %q\n", data.CIHamTyp, "dets")
	}
	if want := []string{"Triplet-B1"}; !reflect.DeepEqual(data.ETSyms, want) {
		t.Errorf("got %v, wanted %v\n", data.ETSyms, want)
	}
	want := [][]ETSec{{
		{From: 0, FromSpin: Alpha, To: 5, ToSpin: Alpha, Coeff: 0.701053},
		{From: 0, FromSpin: Beta, To: 5, ToSpin: Beta, Coeff: -0.701053},
	}}
	if !reflect.DeepEqual(data.ETSecs, want) {
		t.Errorf("got %v, wanted %v\n", data.ETSecs, want)
	}
}

func TestReadETOsc(t *testing.T) {
	data := parseString(t, ` TRANSITION FROM THE GROUND STATE TO EXCITED STATE   1
 filler
 filler
 filler
 filler
 filler
 filler
 filler
 OSCILLATOR   STRENGTH   =    0.028500
`)
	want := []float64{0.028500}
	if !reflect.DeepEqual(data.ETOscs, want) {
		t.Errorf("got %v, wanted %v\n", data.ETOscs, want)
	}
}
