package gamess

import (
	"fmt"
	"strings"
)

// readSCFEnergy handles the one-line SCF result, which names the level
// of theory between FINAL and ENERGY:
//
//	FINAL R-B3LYP ENERGY IS     -382.0507446475 AFTER  10 ITERATIONS
//	FINAL ENERGY IS     -379.7594673378 AFTER   9 ITERATIONS
//
// so the value is the token after "IS".
func (p *parser) readSCFEnergy(line string) error {
	fields := strings.Fields(line)
	for i, f := range fields {
		if f == "IS" && i+1 < len(fields) {
			v, err := atof(fields[i+1])
			if err != nil {
				return fmt.Errorf("readSCFEnergy: %q: %w", line, err)
			}
			p.data.SCFEnergies = append(p.data.SCFEnergies,
				convert(v, "hartree", "eV"))
			return nil
		}
	}
	return fmt.Errorf("readSCFEnergy: no energy in %q", line)
}

// readSCFValues reads the convergence threshold and the iteration
// table that follow an "... SCF CALCULATION" banner. The threshold
// line varies by program version:
//
//	DENSITY MATRIX CONV=  2.00E-05  DFT GRID SWITCH THRESHOLD=  3.00E-04
//	DENSITY MATRIX CONV=  1.00E-05
//	DENSITY CONV=  1.00E-05
//
// The iteration table is terminated by a blank line; status lines
// interleaved with it (DIIS banners, DFT grid switches) do not start
// with an iteration number and are skipped.
func (p *parser) readSCFValues(line string) error {
	var (
		target float64
		err    error
	)
	line, err = p.s.Next()
	if err != nil {
		return err
	}
	for !strings.Contains(line, "ITER EX") {
		for _, marker := range []string{"DENSITY CONV=", "DENSITY MATRIX CONV="} {
			if i := strings.Index(line, marker); i >= 0 {
				rest := strings.Fields(line[i+len(marker):])
				if len(rest) == 0 {
					return fmt.Errorf("readSCFValues: bare %q in %q", marker, line)
				}
				target, err = atof(rest[0])
				if err != nil {
					return fmt.Errorf("readSCFValues: %q: %w", line, err)
				}
				break
			}
		}
		line, err = p.s.Next()
		if err != nil {
			return err
		}
	}
	p.data.SCFTargets = append(p.data.SCFTargets, []float64{target})

	var values []float64
	line, err = p.s.Next()
	if err != nil {
		return err
	}
	for strings.TrimSpace(line) != "" {
		head := line
		if len(head) > 4 {
			head = head[:4]
		}
		// rows that do not start with an iteration number are
		// interleaved status lines
		if _, aerr := atoi(head); aerr == nil {
			fields := strings.Fields(line)
			if len(fields) < 6 {
				return fmt.Errorf("readSCFValues: short row %q", line)
			}
			v, err := atof(fields[5])
			if err != nil {
				return fmt.Errorf("readSCFValues: %q: %w", line, err)
			}
			values = append(values, v)
		}
		line, err = p.s.Next()
		if err != nil {
			return err
		}
	}
	p.data.SCFValues = append(p.data.SCFValues, values)
	return nil
}
