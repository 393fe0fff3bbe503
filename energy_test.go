package gamess

import (
	"reflect"
	"testing"
)

func TestReadMP(t *testing.T) {
	tests := []struct {
		msg  string
		in   string
		want [][]float64
	}{
		{
			msg: "second order",
			in: ` RESULTS OF MOLLER-PLESSET 2ND ORDER CORRECTION ARE
               E(0)=      -285.7568061536
               E(1)=         0.0000000000
               E(2)=        -0.9679419329
             E(MP2)=      -286.7247480864
      ..... DONE WITH MP2 ENERGY .....
`,
			want: [][]float64{{ev(-286.7247480864)}},
		},
		{
			msg: "fourth order",
			in: ` RESULTS OF MOLLER-PLESSET 4TH ORDER CORRECTION ARE
       E(MP2)    =     -76.3070631126
       E(MP3)    =     -76.3124680035
       E(MP4-SDQ)    = -76.3145915544
      ..... DONE WITH MP4 ENERGY .....
`,
			want: [][]float64{{
				ev(-76.3070631126),
				ev(-76.3124680035),
				ev(-76.3145915544),
			}},
		},
		{
			msg: "mbpt2",
			in: `        MBPT(2) ENERGY:      -76.2307429468   CORR.E=  -0.2038477082
`,
			want: [][]float64{{ev(-76.2307429468)}},
		},
	}
	for _, test := range tests {
		t.Run(test.msg, func(t *testing.T) {
			data := parseString(t, test.in)
			if !reflect.DeepEqual(data.MPEnergies, test.want) {
				t.Errorf("got %v, wanted %v\n",
					data.MPEnergies, test.want)
			}
		})
	}
}

// The coupled-cluster cascade records only the highest level printed.
func TestReadCC(t *testing.T) {
	tests := []struct {
		msg  string
		in   string
		want []float64
	}{
		{
			msg: "ccd",
			in: `            CCD ENERGY:      -76.2341222410   CORR. E=  -0.2109389370
`,
			want: []float64{ev(-76.2341222410)},
		},
		{
			msg: "ccsd only",
			in: `        CCSD    ENERGY:      -76.2368038161   CORR.E=  -0.2099085775
 ...
`,
			want: []float64{ev(-76.2368038161)},
		},
		{
			msg: "ccsd[t]",
			in: `        CCSD    ENERGY:      -76.2368038161   CORR.E=  -0.2099085775
        CCSD[T] ENERGY:      -76.2388543206   CORR.E=  -0.2119590820
 ...
`,
			want: []float64{ev(-76.2388543206)},
		},
		{
			msg: "ccsd(t)",
			in: `        CCSD    ENERGY:      -76.2368038161   CORR.E=  -0.2099085775
        CCSD[T] ENERGY:      -76.2388543206   CORR.E=  -0.2119590820
        CCSD(T) ENERGY:      -76.2387911035   CORR.E=  -0.2118958649
`,
			want: []float64{ev(-76.2387911035)},
		},
	}
	for _, test := range tests {
		t.Run(test.msg, func(t *testing.T) {
			data := parseString(t, test.in)
			if !reflect.DeepEqual(data.CCEnergies, test.want) {
				t.Errorf("got %v, wanted %v\n",
					data.CCEnergies, test.want)
			}
		})
	}
}
