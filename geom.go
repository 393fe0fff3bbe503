package gamess

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// readGeoTargets picks the geometry convergence threshold out of
// either phrasing:
//
//	          OPTTOL = 1.000E-04          RMIN   = 1.500E-03
//	INPUT CARD> $STATPT OPTTOL=0.0001 NSTEP=100 $END
//
// The first occurrence wins. The max-gradient target is three times
// the RMS target.
func (p *parser) readGeoTargets(line string) error {
	if p.data.GeoTargets != nil {
		return nil
	}
	fields := strings.Fields(line)
	for i, f := range fields {
		if !strings.Contains(f, "OPTTOL") {
			continue
		}
		var raw string
		if f == "OPTTOL" {
			if i+2 >= len(fields) {
				return fmt.Errorf("readGeoTargets: short line %q", line)
			}
			raw = fields[i+2]
		} else {
			_, raw, _ = strings.Cut(f, "=")
		}
		opttol, err := atof(raw)
		if err != nil {
			return fmt.Errorf("readGeoTargets: %q: %w", line, err)
		}
		p.data.GeoTargets = []float64{opttol, 3 * opttol}
		return nil
	}
	return nil
}

// readGeoValues records the [max, rms] gradient of one optimization
// step.
func (p *parser) readGeoValues(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 8 {
		return fmt.Errorf("readGeoValues: short line %q", line)
	}
	max, err := atof(fields[3])
	if err != nil {
		return fmt.Errorf("readGeoValues: %q: %w", line, err)
	}
	rms, err := atof(fields[7])
	if err != nil {
		return fmt.Errorf("readGeoValues: %q: %w", line, err)
	}
	p.data.GeoValues = append(p.data.GeoValues, []float64{max, rms})
	return nil
}

// readChargeMult takes the charge from the trigger line and the
// multiplicity from the line after it.
func (p *parser) readChargeMult(line string) error {
	charge, err := lastField(line)
	if err != nil {
		return fmt.Errorf("readChargeMult: %q: %w", line, err)
	}
	p.data.Charge = charge
	line, err = p.s.Next()
	if err != nil {
		return err
	}
	mult, err := lastField(line)
	if err != nil {
		return fmt.Errorf("readChargeMult: %q: %w", line, err)
	}
	p.data.Mult = mult
	return nil
}

func (p *parser) readNatom(line string) error {
	n, err := lastField(line)
	if err != nil {
		return fmt.Errorf("readNatom: %q: %w", line, err)
	}
	p.data.Natom = n
	return nil
}

// readInputOrient reads an input-orientation coordinate block, the
// only geometry printed for single points. It rebuilds Atomnos from
// the atomic charge column, since the atom labels are arbitrary, and
// converts the coordinates from bohr. A later standard-orientation
// block supersedes the geometry pushed here.
func (p *parser) readInputOrient(line string) error {
	if _, err := p.s.Next(); err != nil { // CHARGE X Y Z header
		return err
	}
	line, err := p.s.Next()
	if err != nil {
		return err
	}
	var (
		atomnos []int
		coords  []float64
	)
	for strings.TrimSpace(line) != "" {
		fields := strings.Fields(line)
		if len(fields) < 5 {
			return fmt.Errorf("readInputOrient: short row %q", line)
		}
		z, err := atof(fields[1])
		if err != nil {
			return fmt.Errorf("readInputOrient: %q: %w", line, err)
		}
		atomnos = append(atomnos, int(math.Round(z)))
		for _, f := range fields[2:5] {
			v, err := atof(f)
			if err != nil {
				return fmt.Errorf("readInputOrient: %q: %w", line, err)
			}
			coords = append(coords, convert(v, "bohr", "Angstrom"))
		}
		line, err = p.s.Next()
		if err != nil {
			return err
		}
	}
	if len(atomnos) == 0 {
		return fmt.Errorf("readInputOrient: empty coordinate block")
	}
	p.data.Atomnos = atomnos
	p.data.AtomCoords = append(p.data.AtomCoords,
		mat.NewDense(len(atomnos), 3, coords))
	return nil
}

// setGeoOptFinished latches the end of a geometry optimization so the
// converged geometry, which GAMESS prints again, is not captured
// twice.
func (p *parser) setGeoOptFinished(line string) error {
	p.geoOptFinished = true
	return nil
}

// readStdOrient reads a standard-orientation coordinate block, which
// is printed on every optimization cycle and is already in Angstroms.
// The first one discards the input-orientation placeholder geometry.
func (p *parser) readStdOrient(line string) error {
	if p.geoOptFinished {
		return nil
	}
	if p.firstStdOrient {
		p.firstStdOrient = false
		p.data.AtomCoords = nil
	}
	for i := 0; i < 2; i++ { // column header and hyphens
		if _, err := p.s.Next(); err != nil {
			return err
		}
	}
	line, err := p.s.Next()
	if err != nil {
		return err
	}
	var (
		coords []float64
		n      int
	)
	for strings.TrimSpace(line) != "" {
		fields := strings.Fields(line)
		if len(fields) < 5 {
			return fmt.Errorf("readStdOrient: short row %q", line)
		}
		row, err := toFloat(fields[2:5])
		if err != nil {
			return fmt.Errorf("readStdOrient: %q: %w", line, err)
		}
		coords = append(coords, row...)
		n++
		line, err = p.s.Next()
		if err != nil {
			return err
		}
	}
	if n == 0 {
		return fmt.Errorf("readStdOrient: empty coordinate block")
	}
	p.data.AtomCoords = append(p.data.AtomCoords,
		mat.NewDense(n, 3, coords))
	return nil
}

// lastField parses the last whitespace-separated field as an int.
func lastField(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty line")
	}
	return atoi(fields[len(fields)-1])
}

func (p *parser) readNBasis(line string) error {
	n, err := lastField(line)
	if err != nil {
		return fmt.Errorf("readNBasis: %q: %w", line, err)
	}
	p.data.NBasis = n
	return nil
}

func (p *parser) readNMO(line string) error {
	n, err := lastField(line)
	if err != nil {
		return fmt.Errorf("readNMO: %q: %w", line, err)
	}
	p.data.NMO = n
	return nil
}
