package gamess

import (
	"fmt"
	"math"
	"strings"
)

// readETEnergies reads the CIS excitation energy table. The hartree
// column is kept since the eV and nm columns after it carry fewer
// digits.
func (p *parser) readETEnergies(line string) error {
	for i := 0; i < 2; i++ { // column header and dashes
		if _, err := p.s.Next(); err != nil {
			return err
		}
	}
	line, err := p.s.Next()
	if err != nil {
		return err
	}
	for len(strings.Fields(line)) > 0 {
		v, err := field(line, 1)
		if err != nil {
			return fmt.Errorf("readETEnergies: %q: %w", line, err)
		}
		p.data.ETEnergies = append(p.data.ETEnergies,
			convert(v, "hartree", "cm-1"))
		line, err = p.s.Next()
		if err != nil {
			return err
		}
	}
	return nil
}

// The CI Hamiltonian type is always reported before the excitation
// coefficients; it decides both their normalization and whether BETA
// rows appear.

func (p *parser) setSaps(line string) error {
	p.data.CIHamTyp = "saps"
	return nil
}

func (p *parser) setDets(line string) error {
	p.data.CIHamTyp = "dets"
	return nil
}

// readETSecs reads one EXCITED STATE block: the spin and spatial
// symmetry from the header, then the one-electron excitation rows,
// which run until a dashed line. Orbital indices are rebased to 0.
// With the SAPS Hamiltonian the printed coefficients are scaled by
// sqrt(2) to normalize to 1, so they are divided back down; with DETS
// the rows are per-determinant and BETA rows go to the beta channel.
func (p *parser) readETSecs(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 8 {
		return fmt.Errorf("readETSecs: short header %q", line)
	}
	s, err := atof(fields[7])
	if err != nil {
		return fmt.Errorf("readETSecs: %q: %w", line, err)
	}
	var sym string
	switch int(s) {
	case 0:
		sym = "Singlet"
	case 1:
		sym = "Triplet"
	default:
		return fmt.Errorf("readETSecs: spin %v in %q", s, line)
	}
	p.data.ETSyms = append(p.data.ETSyms,
		sym+"-"+fields[len(fields)-1])

	for i := 0; i < 5; i++ {
		if _, err := p.s.Next(); err != nil {
			return err
		}
	}
	line, err = p.s.Next()
	if err != nil {
		return err
	}
	var contribs []ETSec
	for {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return fmt.Errorf("readETSecs: unterminated block")
		}
		if trimmed[0] == '-' {
			break
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return fmt.Errorf("readETSecs: short row %q", line)
		}
		spin := Alpha
		if p.data.CIHamTyp == "dets" && fields[0] == "BETA" {
			spin = Beta
		}
		from, err := atoi(fields[len(fields)-3])
		if err != nil {
			return fmt.Errorf("readETSecs: %q: %w", line, err)
		}
		to, err := atoi(fields[len(fields)-2])
		if err != nil {
			return fmt.Errorf("readETSecs: %q: %w", line, err)
		}
		coeff, err := atof(fields[len(fields)-1])
		if err != nil {
			return fmt.Errorf("readETSecs: %q: %w", line, err)
		}
		if p.data.CIHamTyp == "saps" {
			coeff /= math.Sqrt2
		}
		contribs = append(contribs, ETSec{
			From: from - 1, FromSpin: spin,
			To: to - 1, ToSpin: spin,
			Coeff: coeff,
		})
		line, err = p.s.Next()
		if err != nil {
			return err
		}
	}
	p.data.ETSecs = append(p.data.ETSecs, contribs)
	return nil
}

// readETOsc picks the oscillator strength out of the transition
// summary, a fixed eight lines below the trigger.
func (p *parser) readETOsc(line string) error {
	var err error
	for i := 0; i < 8; i++ {
		line, err = p.s.Next()
		if err != nil {
			return err
		}
	}
	v, err := field(line, 3)
	if err != nil {
		return fmt.Errorf("readETOsc: %q: %w", line, err)
	}
	p.data.ETOscs = append(p.data.ETOscs, v)
	return nil
}
