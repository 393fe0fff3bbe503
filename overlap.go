package gamess

import (
	"fmt"
	"log"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// readOverlap assembles the symmetric AO overlap matrix, printed in
// bands of five columns with three header lines per band and one
// fewer data row each band. Both triangles are filled as the bands
// arrive. A second overlap block in the same log continues into the
// same matrix; that is worth a note but not an error.
func (p *parser) readOverlap(line string) error {
	d := p.data
	if d.NBasis == 0 {
		return fmt.Errorf("readOverlap: overlap matrix before basis size")
	}
	if d.AOOverlaps == nil {
		d.AOOverlaps = mat.NewSymDense(d.NBasis, nil)
	} else {
		log.Printf("readOverlap: reading additional overlap block")
	}
	for base := 0; base < d.NBasis; base += 5 {
		for i := 0; i < 3; i++ { // blank, column numbers, blank
			if _, err := p.s.Next(); err != nil {
				return err
			}
		}
		for i := 0; i < d.NBasis-base; i++ {
			line, err := p.s.Next()
			if err != nil {
				return err
			}
			fields := strings.Fields(line)
			for j := 4; j < len(fields); j++ {
				if base+j-4 >= d.NBasis {
					return fmt.Errorf("readOverlap: row too wide: %q", line)
				}
				v, err := atof(fields[j])
				if err != nil {
					return fmt.Errorf("readOverlap: %q: %w", line, err)
				}
				d.AOOverlaps.SetSym(base+j-4, i+base, v)
			}
		}
	}
	return nil
}

// readECP reads the per-atom ECP parameter headers, which either give
// the replaced core-electron count directly,
//
//	PARAMETERS FOR "SBKJC  "  ON ATOM  4 WITH ZCORE 10 LMAX 2 ...
//
// or refer back to an earlier atom whose count is copied. The
// parameter rows between headers are skipped.
func (p *parser) readECP(line string) error {
	d := p.data
	if d.Natom == 0 {
		return fmt.Errorf("readECP: potentials before atom count")
	}
	if d.CoreElectrons == nil {
		d.CoreElectrons = make([]int, d.Natom)
	}
	for i := 0; i < 2; i++ { // dashes and blank
		if _, err := p.s.Next(); err != nil {
			return err
		}
	}
	header, err := p.s.Next()
	if err != nil {
		return err
	}
	for {
		fields := strings.Fields(header)
		if len(fields) == 0 || fields[0] != "PARAMETERS" {
			return nil
		}
		if len(header) < 55 {
			return fmt.Errorf("readECP: truncated header %q", header)
		}
		atomnum, err := atoi(header[34:40])
		if err != nil {
			return fmt.Errorf("readECP: %q: %w", header, err)
		}
		if atomnum < 1 || atomnum > d.Natom {
			return fmt.Errorf("readECP: atom %d out of range in %q",
				atomnum, header)
		}
		switch {
		case at(40, "WITH ZCORE")(header):
			zcore, err := atoi(header[50:55])
			if err != nil {
				return fmt.Errorf("readECP: %q: %w", header, err)
			}
			d.CoreElectrons[atomnum-1] = zcore
		case at(40, "ARE THE SAME AS")(header):
			if len(header) < 61 {
				return fmt.Errorf("readECP: truncated header %q", header)
			}
			atomcopy, err := atoi(header[60:])
			if err != nil {
				return fmt.Errorf("readECP: %q: %w", header, err)
			}
			if atomcopy < 1 || atomcopy > d.Natom {
				return fmt.Errorf("readECP: atom %d out of range in %q",
					atomcopy, header)
			}
			d.CoreElectrons[atomnum-1] = d.CoreElectrons[atomcopy-1]
		}
		line, err = p.s.Next()
		if err != nil {
			return err
		}
		for len(strings.Fields(line)) != 0 {
			line, err = p.s.Next()
			if err != nil {
				return err
			}
		}
		header, err = p.s.Next()
		if err != nil {
			return err
		}
	}
}
