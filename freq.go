package gamess

import (
	"fmt"
	"log"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// readFreqs reads the harmonic normal coordinate analysis. Modes come
// in bands of up to five columns:
//
//	                      1           2           3           4           5
//	   FREQUENCY:        52.49       41.45       17.61        9.23       10.61
//	REDUCED MASS:      3.92418     3.77048     5.43419     6.44636     5.50693
//	IR INTENSITY:      0.00013     0.00001     0.00004     0.00000     0.00003
//
// followed by the Cartesian displacements, three axis rows per atom,
// and a Sayvetz trailer. The reduced-mass row is absent in PC-GAMESS,
// which in turn may add Raman and depolarization rows. If the run is
// not at a stationary point, the header is printed twice around a
// warning banner; the analysis is still read, with an advisory logged.
// The rotation/translation window named by the MODES header is cut
// from every collected sequence at the end.
func (p *parser) readFreqs(line string) error {
	d := p.data
	d.VibFreqs = nil
	d.VibIRs = nil
	d.VibRamans = nil
	d.VibDisps = nil
	var err error
	warning := false
	for !strings.Contains(line, "MODES") {
		line, err = p.s.Next()
		if err != nil {
			return err
		}
		if strings.Contains(line, "THIS IS NOT A STATIONARY POINT") {
			warning = true
		}
	}
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return fmt.Errorf("readFreqs: bad MODES header %q", line)
	}
	startrot, err := atoi(fields[1])
	if err != nil {
		return fmt.Errorf("readFreqs: %q: %w", line, err)
	}
	endrot, err := atoi(fields[3])
	if err != nil {
		return fmt.Errorf("readFreqs: %q: %w", line, err)
	}
	if _, err := p.s.Next(); err != nil { // blank under MODES
		return err
	}
	// units header, terminated by a blank
	if err := p.skipToBlank(); err != nil {
		return err
	}
	if warning {
		// the duplicated header around the warning banner
		if err := p.skipToBlank(); err != nil {
			return err
		}
		log.Printf("readFreqs: not a stationary point on the " +
			"molecular PES; the vibrational analysis is not valid")
	}

	var (
		vibfreqs, vibirs, vibramans []float64
		disps                       [][][]float64 // mode x atom x xyz
		hasRaman                    bool
	)
	natom := len(d.Atomnos)
	freqNo, err := p.s.Next()
	if err != nil {
		return err
	}
	for !strings.Contains(freqNo, "SAYVETZ") {
		line, err = p.s.Next()
		if err != nil {
			return err
		}
		freqRow := strings.Fields(line)
		if len(freqRow) < 2 {
			return fmt.Errorf("readFreqs: bad frequency row %q", line)
		}
		// an I token marks the preceding frequency imaginary
		for _, tok := range freqRow[1:] {
			if tok == "I" {
				if len(vibfreqs) == 0 {
					return fmt.Errorf("readFreqs: dangling I in %q", line)
				}
				vibfreqs[len(vibfreqs)-1] *= -1
				continue
			}
			v, err := atof(tok)
			if err != nil {
				return fmt.Errorf("readFreqs: %q: %w", line, err)
			}
			vibfreqs = append(vibfreqs, v)
		}
		line, err = p.s.Next()
		if err != nil {
			return err
		}
		if strings.Contains(line, "REDUCED") {
			line, err = p.s.Next()
			if err != nil {
				return err
			}
		}
		irRow := strings.Fields(line)
		if len(irRow) < 3 {
			return fmt.Errorf("readFreqs: bad intensity row %q", line)
		}
		ir, err := toFloat(irRow[2:])
		if err != nil {
			return fmt.Errorf("readFreqs: %q: %w", line, err)
		}
		for _, v := range ir {
			vibirs = append(vibirs,
				convert(v, "Debye^2/amu-Angstrom^2", "km/mol"))
		}
		line, err = p.s.Next()
		if err != nil {
			return err
		}
		if strings.Contains(line, "RAMAN") {
			hasRaman = true
			ram, err := toFloat(strings.Fields(line)[2:])
			if err != nil {
				return fmt.Errorf("readFreqs: %q: %w", line, err)
			}
			vibramans = append(vibramans, ram...)
			if _, err := p.s.Next(); err != nil { // depolarization
				return err
			}
			line, err = p.s.Next()
			if err != nil {
				return err
			}
		}
		if strings.TrimSpace(line) != "" {
			return fmt.Errorf("readFreqs: expected blank before displacements, got %q", line)
		}

		// Cartesian displacements: three axis rows per atom, one
		// column per mode in the band, starting at column 21. The
		// band width comes from the row contents.
		var ncols int
		block := make([][][]float64, 5)
		for j := 0; j < natom; j++ {
			q := make([][]float64, 5)
			for k := 0; k < 3; k++ {
				line, err = p.s.Next()
				if err != nil {
					return err
				}
				rest := ""
				if len(line) > 21 {
					rest = line[21:]
				}
				broken, err := toFloat(strings.Fields(rest))
				if err != nil {
					return fmt.Errorf("readFreqs: %q: %w", line, err)
				}
				ncols = len(broken)
				for l, v := range broken {
					q[l] = append(q[l], v)
				}
			}
			for k := 0; k < ncols; k++ {
				block[k] = append(block[k], q[k])
			}
		}
		disps = append(disps, block[:ncols]...)

		for j := 0; j < 10; j++ { // Sayvetz trailer
			if _, err := p.s.Next(); err != nil {
				return err
			}
		}
		if _, err := p.s.Next(); err != nil { // blank
			return err
		}
		freqNo, err = p.s.Next()
		if err != nil {
			return err
		}
	}

	// cut the rotation/translation window [startrot-1, endrot)
	n := len(vibfreqs)
	if startrot < 1 || endrot > n || len(vibirs) != n || len(disps) != n ||
		(hasRaman && len(vibramans) != n) {
		return fmt.Errorf("readFreqs: inconsistent mode counts (%d freqs, %d irs, %d disps)",
			n, len(vibirs), len(disps))
	}
	d.VibFreqs = cutWindow(vibfreqs, startrot, endrot)
	d.VibIRs = cutWindow(vibirs, startrot, endrot)
	if hasRaman {
		d.VibRamans = cutWindow(vibramans, startrot, endrot)
	}
	for i, disp := range disps {
		if i >= startrot-1 && i < endrot {
			continue
		}
		flat := make([]float64, 0, 3*natom)
		for _, atom := range disp {
			flat = append(flat, atom...)
		}
		d.VibDisps = append(d.VibDisps, mat.NewDense(natom, 3, flat))
	}
	return nil
}

// skipToBlank consumes lines up to and including the next blank one.
func (p *parser) skipToBlank() error {
	line, err := p.s.Next()
	if err != nil {
		return err
	}
	for strings.TrimSpace(line) != "" {
		line, err = p.s.Next()
		if err != nil {
			return err
		}
	}
	return nil
}

// cutWindow drops the 1-based index range [start, end] from x.
func cutWindow(x []float64, start, end int) []float64 {
	out := make([]float64, 0, len(x)-(end-start+1))
	out = append(out, x[:start-1]...)
	out = append(out, x[end:]...)
	return out
}
