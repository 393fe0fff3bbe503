package gamess

import (
	"fmt"
	"strings"
)

// readBasis reads the ATOMIC BASIS SET table into GBasis. Primitive
// rows look like
//
//	1   S    1        71.6168370    0.1543289673
//
// in GAMESS-US, with PC-GAMESS adding parenthesized normalized
// coefficients that shift the columns. An L shell carries separate S
// and P coefficient columns and expands into two Shells. GAMESS
// prints the shells of only the first of a run of identical atoms;
// the gap in the global shell numbering tells how many atoms share
// the description, so the previous atom's shells are replicated
// across the run. That inference assumes the shared atoms have
// uniform shell counts, which holds for the element-elision the
// programs actually do.
func (p *parser) readBasis(line string) error {
	d := p.data
	d.GBasis = nil
	var err error
	for !strings.Contains(line, "SHELL") {
		line, err = p.s.Next()
		if err != nil {
			return err
		}
	}
	if _, err = p.s.Next(); err != nil { // blank
		return err
	}
	if _, err = p.s.Next(); err != nil { // first atom name
		return err
	}
	// global shell number of the last shell in the previous
	// description, plus one
	shellcounter := 1
	for !strings.Contains(line, "TOTAL NUMBER") {
		if _, err = p.s.Next(); err != nil { // blank
			return err
		}
		line, err = p.s.Next()
		if err != nil {
			return err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return fmt.Errorf("readBasis: empty shell row")
		}
		shellno, err := atoi(fields[0])
		if err != nil {
			return fmt.Errorf("readBasis: %q: %w", line, err)
		}
		shellgap := shellno - shellcounter
		var (
			gbasis    []Shell
			shellsize int
		)
		for len(strings.Fields(line)) != 1 &&
			!strings.Contains(line, "TOTAL NUMBER") {
			shellsize++
			coeff := make(map[string][][2]float64)
			var sym string
			for strings.TrimSpace(line) != "" {
				fields := strings.Fields(line)
				if len(fields) < 5 {
					return fmt.Errorf("readBasis: short row %q", line)
				}
				sym = fields[1]
				exp, err := atof(fields[3])
				if err != nil {
					return fmt.Errorf("readBasis: %q: %w", line, err)
				}
				switch sym {
				case "L":
					s, perr := pairCoeffs(fields)
					if perr != nil {
						return fmt.Errorf("readBasis: %q: %w", line, perr)
					}
					coeff["S"] = append(coeff["S"], [2]float64{exp, s[0]})
					coeff["P"] = append(coeff["P"], [2]float64{exp, s[1]})
				case "S", "P", "D", "F", "G":
					c, cerr := singleCoeff(fields)
					if cerr != nil {
						return fmt.Errorf("readBasis: %q: %w", line, cerr)
					}
					coeff[sym] = append(coeff[sym], [2]float64{exp, c})
				default:
					return fmt.Errorf("readBasis: unexpected shell type %q in %q",
						sym, line)
				}
				line, err = p.s.Next()
				if err != nil {
					return err
				}
			}
			if sym == "L" {
				gbasis = append(gbasis,
					Shell{"S", coeff["S"]},
					Shell{"P", coeff["P"]})
			} else {
				gbasis = append(gbasis, Shell{sym, coeff[sym]})
			}
			line, err = p.s.Next()
			if err != nil {
				return err
			}
		}
		if shellsize == 0 {
			return fmt.Errorf("readBasis: empty shell description before %q", line)
		}
		numtoadd := 1 + shellgap/shellsize
		shellcounter = shellno + shellsize
		for i := 0; i < numtoadd; i++ {
			d.GBasis = append(d.GBasis, gbasis)
		}
	}
	return nil
}

// singleCoeff returns the contraction coefficient of a non-L
// primitive row, which sits in the 5th field for GAMESS-US and inside
// the first parenthesized field for PC-GAMESS.
func singleCoeff(fields []string) (float64, error) {
	if len(fields) == 5 {
		return atof(fields[4])
	}
	if len(fields) < 7 || !strings.HasSuffix(fields[6], ")") {
		return 0, fmt.Errorf("unrecognized primitive row layout")
	}
	return atof(strings.TrimSuffix(fields[6], ")"))
}

// pairCoeffs returns the S and P coefficients of an L primitive row.
func pairCoeffs(fields []string) ([2]float64, error) {
	var ret [2]float64
	if len(fields) == 6 {
		s, err := atof(fields[4])
		if err != nil {
			return ret, err
		}
		pc, err := atof(fields[5])
		if err != nil {
			return ret, err
		}
		return [2]float64{s, pc}, nil
	}
	if len(fields) < 10 || !strings.HasSuffix(fields[6], ")") ||
		!strings.HasSuffix(fields[9], ")") {
		return ret, fmt.Errorf("unrecognized L primitive row layout")
	}
	s, err := atof(strings.TrimSuffix(fields[6], ")"))
	if err != nil {
		return ret, err
	}
	pc, err := atof(strings.TrimSuffix(fields[9], ")"))
	if err != nil {
		return ret, err
	}
	return [2]float64{s, pc}, nil
}
