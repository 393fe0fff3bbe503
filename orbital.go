package gamess

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// aolabel matches the basis-function label opening an eigenvector
// row: function number, element symbol, atom number, orbital type.
var aolabel = regexp.MustCompile(`(\d+)\s*([A-Z][A-Z]?)\s*(\d+)\s*([A-Z]+)`)

// readMOs reads the final eigenvector report, blocks of up to five
// orbitals:
//
//	                    1          2          3          4          5
//	                -10.0162   -10.0161   -10.0039   -10.0039   -10.0029
//	                   BU         AG         BU         AG         AG
//	  1  C  1  S    0.699293   0.699290  -0.027566   0.027799   0.002412
//
// Eigenvalues are converted to eV and symmetry labels normalized. On
// the first block only, the row labels are parsed into AtomBasis and
// AONames; F-type labels may omit the atom number, in which case the
// most recent atom is reused. Coefficients are fixed-width 11-column
// fields from column 15, GAMESS-US and PC-GAMESS differing only in
// the label columns before that. A BETA SET section, signaled by the
// absence of an END OF line after the first set, repeats the layout
// into a second channel.
func (p *parser) readMOs(line string) error {
	d := p.data
	if d.NBasis == 0 {
		return fmt.Errorf("readMOs: eigenvectors before basis size")
	}
	if d.NMO == 0 {
		d.NMO = d.NBasis
	}
	d.MOEnergies = [][]float64{{}}
	d.MOSyms = [][]string{{}}
	d.MOCoeffs = []*mat.Dense{mat.NewDense(d.NMO, d.NBasis, nil)}
	readAtomBasis := false
	if d.AtomBasis == nil {
		if d.Natom == 0 {
			return fmt.Errorf("readMOs: eigenvectors before atom count")
		}
		d.AtomBasis = make([][]int, d.Natom)
		d.AONames = nil
		readAtomBasis = true
	}
	if _, err := p.s.Next(); err != nil { // dashes under the banner
		return err
	}
	if err := p.readMOSet(Alpha, readAtomBasis); err != nil {
		return err
	}
	line, err := p.s.Next()
	if err != nil {
		return err
	}
	if !strings.Contains(line, "END OF") {
		d.MOEnergies = append(d.MOEnergies, []float64{})
		d.MOSyms = append(d.MOSyms, []string{})
		d.MOCoeffs = append(d.MOCoeffs, mat.NewDense(d.NMO, d.NBasis, nil))
		for i := 0; i < 5; i++ { // BETA SET banner
			if _, err := p.s.Next(); err != nil {
				return err
			}
		}
		if err := p.readMOSet(Beta, false); err != nil {
			return err
		}
		line, err = p.s.Next()
		if err != nil {
			return err
		}
	}
	if !strings.Contains(line, "END OF") {
		return fmt.Errorf("readMOs: expected END OF after eigenvectors, got %q", line)
	}
	return nil
}

// readMOSet consumes one full set of eigenvector blocks into channel
// ch.
func (p *parser) readMOSet(ch int, readAtomBasis bool) error {
	d := p.data
	oldatom := 0
	for base := 0; base < d.NMO; base += 5 {
		if _, err := p.s.Next(); err != nil { // blank
			return err
		}
		if _, err := p.s.Next(); err != nil { // orbital numbers
			return err
		}
		line, err := p.s.Next()
		if err != nil {
			return err
		}
		evs, err := toFloat(strings.Fields(line))
		if err != nil {
			return fmt.Errorf("readMOs: eigenvalues %q: %w", line, err)
		}
		for _, v := range evs {
			d.MOEnergies[ch] = append(d.MOEnergies[ch],
				convert(v, "hartree", "eV"))
		}
		line, err = p.s.Next()
		if err != nil {
			return err
		}
		for _, s := range strings.Fields(line) {
			d.MOSyms[ch] = append(d.MOSyms[ch], NormalizeSym(s))
		}
		for i := 0; i < d.NBasis; i++ {
			line, err = p.s.Next()
			if err != nil {
				return err
			}
			if readAtomBasis && base == 0 {
				var aerr error
				oldatom, aerr = p.readAOLabel(line, oldatom)
				if aerr != nil {
					return aerr
				}
			}
			coeffs := ""
			if len(line) > 15 {
				coeffs = line[15:]
			}
			for j := 0; j*11+4 < len(coeffs); j++ {
				if base+j >= d.NMO {
					return fmt.Errorf("readMOs: more columns than orbitals in %q", line)
				}
				end := (j + 1) * 11
				if end > len(coeffs) {
					end = len(coeffs)
				}
				v, err := atof(coeffs[j*11 : end])
				if err != nil {
					return fmt.Errorf("readMOs: %q: %w", line, err)
				}
				d.MOCoeffs[ch].Set(base+j, i, v)
			}
		}
	}
	return nil
}

// readAOLabel parses the label field of one eigenvector row into
// AtomBasis and AONames and returns the atom number for reuse by
// labels that omit it.
func (p *parser) readAOLabel(line string, oldatom int) (int, error) {
	d := p.data
	start := line
	if len(start) > 17 {
		start = start[:17]
	}
	var (
		aoname string
		atomno int
		orbno  int
	)
	if m := aolabel.FindStringSubmatch(start); m != nil {
		orb, err := atoi(m[1])
		if err != nil {
			return oldatom, fmt.Errorf("readMOs: label %q: %w", line, err)
		}
		atom, err := atoi(m[3])
		if err != nil {
			return oldatom, fmt.Errorf("readMOs: label %q: %w", line, err)
		}
		aoname = capitalize(m[2]) + m[3] + "_" + m[4]
		orbno = orb - 1
		atomno = atom - 1
		oldatom = atom
	} else {
		// F-type functions drop the atom number; reuse the last
		// one seen
		g := strings.Fields(line)
		if len(g) < 3 || oldatom == 0 {
			return oldatom, fmt.Errorf("readMOs: unparseable label %q", line)
		}
		orb, err := atoi(g[0])
		if err != nil {
			return oldatom, fmt.Errorf("readMOs: label %q: %w", line, err)
		}
		aoname = capitalize(g[1]) + strconv.Itoa(oldatom) + "_" + g[2]
		orbno = orb - 1
		atomno = oldatom - 1
	}
	if atomno < 0 || atomno >= len(d.AtomBasis) {
		return oldatom, fmt.Errorf("readMOs: atom %d out of range in %q",
			atomno+1, line)
	}
	d.AtomBasis[atomno] = append(d.AtomBasis[atomno], orbno)
	d.AONames = append(d.AONames, aoname)
	return oldatom, nil
}

// capitalize turns an upper-cased element symbol into its usual form.
func capitalize(sym string) string {
	if len(sym) < 2 {
		return sym
	}
	return sym[:1] + strings.ToLower(sym[1:])
}

// readHomos records the tentative highest-occupied index per spin
// channel, alpha from the trigger line and beta from the next one.
// Whether both channels are real is unknown until the initial-guess
// symmetry line confirms it.
func (p *parser) readHomos(line string) error {
	a, err := lastField(line)
	if err != nil {
		return fmt.Errorf("readHomos: %q: %w", line, err)
	}
	line, err = p.s.Next()
	if err != nil {
		return err
	}
	b, err := lastField(line)
	if err != nil {
		return fmt.Errorf("readHomos: %q: %w", line, err)
	}
	p.data.Homos = []int{a - 1, b - 1}
	return nil
}

// confirmRestricted collapses Homos to one channel when the
// initial-guess line shows the calculation is restricted.
func (p *parser) confirmRestricted(line string) error {
	if strings.Contains(line, "BOTH SET(S)") && len(p.data.Homos) > 1 {
		p.data.Homos = p.data.Homos[:1]
	}
	return nil
}
