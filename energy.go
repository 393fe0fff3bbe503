package gamess

import (
	"fmt"
	"strings"
)

// readMP reads a Moller-Plesset correction block. GAMESS-US only goes
// to second order:
//
//	RESULTS OF MOLLER-PLESSET 2ND ORDER CORRECTION ARE
//	        E(0)=      -285.7568061536
//	        E(1)=         0.0
//	        E(2)=        -0.9679419329
//	      E(MP2)=      -286.7247480864
//
// while PC-GAMESS reports 3rd and 4th order with a shifted layout
// (E(MP2), E(MP3), E(MP4-SDQ)/E(MP4-SDTQ) with the value two tokens
// over). Each corrected total found is appended in encounter order,
// which the program guarantees is increasing order.
func (p *parser) readMP(line string) error {
	if len(line) < 28 {
		return fmt.Errorf("readMP: truncated header %q", line)
	}
	order, err := atoi(line[27:28])
	if err != nil {
		return fmt.Errorf("readMP: no order in %q: %w", line, err)
	}
	p.data.MPEnergies = append(p.data.MPEnergies, []float64{})
	cur := len(p.data.MPEnergies) - 1
	done := fmt.Sprintf("..... DONE WITH MP%d ENERGY .....", order)
	for strings.TrimSpace(line) != done {
		line, err = p.s.Next()
		if err != nil {
			return err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		var raw string
		switch fields[0] {
		case "E(MP2)=":
			raw = fields[1]
		case "E(MP2)", "E(MP3)", "E(MP4-SDQ)", "E(MP4-SDTQ)":
			if len(fields) < 3 {
				return fmt.Errorf("readMP: short row %q", line)
			}
			raw = fields[2]
		default:
			continue
		}
		v, err := atof(raw)
		if err != nil {
			return fmt.Errorf("readMP: %q: %w", line, err)
		}
		p.data.MPEnergies[cur] = append(p.data.MPEnergies[cur],
			convert(v, "hartree", "eV"))
	}
	return nil
}

// readCCD handles the single-line coupled-cluster-doubles result.
func (p *parser) readCCD(line string) error {
	v, err := field(line, 2)
	if err != nil {
		return fmt.Errorf("readCCD: %q: %w", line, err)
	}
	p.data.CCEnergies = append(p.data.CCEnergies,
		convert(v, "hartree", "eV"))
	return nil
}

// readCCSD reads the coupled-cluster cascade. The CCSD line may be
// followed by CCSD[T] and then CCSD(T) lines at the same offset; each
// line present overwrites the previous value, so the highest level
// actually printed wins and only that value is recorded.
func (p *parser) readCCSD(line string) error {
	v, err := field(line, 2)
	if err != nil {
		return fmt.Errorf("readCCSD: %q: %w", line, err)
	}
	line, err = p.s.Next()
	if err != nil {
		return err
	}
	if at(8, "CCSD[T] ENERGY:")(line) {
		v, err = field(line, 2)
		if err != nil {
			return fmt.Errorf("readCCSD: %q: %w", line, err)
		}
		line, err = p.s.Next()
		if err != nil {
			return err
		}
		if at(8, "CCSD(T) ENERGY:")(line) {
			v, err = field(line, 2)
			if err != nil {
				return fmt.Errorf("readCCSD: %q: %w", line, err)
			}
		}
	}
	p.data.CCEnergies = append(p.data.CCEnergies,
		convert(v, "hartree", "eV"))
	return nil
}

// readMBPT2 starts a new MP entry from the MBPT(2) line printed ahead
// of every coupled-cluster run.
func (p *parser) readMBPT2(line string) error {
	v, err := field(line, 2)
	if err != nil {
		return fmt.Errorf("readMBPT2: %q: %w", line, err)
	}
	p.data.MPEnergies = append(p.data.MPEnergies,
		[]float64{convert(v, "hartree", "eV")})
	return nil
}

// field parses whitespace-separated field i of line as a float.
func field(line string, i int) (float64, error) {
	fields := strings.Fields(line)
	if len(fields) <= i {
		return 0, fmt.Errorf("no field %d", i)
	}
	return atof(fields[i])
}
