/*
Package gamess extracts structured results from GAMESS and PC-GAMESS
log files: geometries, SCF/MP/coupled-cluster energies, excited-state
data, vibrational spectra, basis sets, molecular orbitals, overlap
matrices, and ECP core counts.

The logs have no fixed grammar, so the parser is a single forward pass
over the lines: a table of trigger predicates recognizes the opening
line of each section and hands the cursor to a section reader, which
consumes lines until its terminator and writes typed values into the
shared Data record.
*/
package gamess

import (
	"io"
	"os"
	"strconv"
	"strings"

	"brent/gamess/units"
)

// parser carries the state of one parse: the line cursor, the Data
// being filled in, and the handful of one-shot flags that sections set
// for each other.
type parser struct {
	s    *Scanner
	data *Data

	// firstStdOrient marks that no standard-orientation geometry
	// has been seen yet; the first one discards the input
	// orientation placeholder
	firstStdOrient bool
	// geoOptFinished suppresses geometry capture after the
	// equilibrium geometry has been reported, which would otherwise
	// be read twice
	geoOptFinished bool
}

// A trigger pairs a predicate on a single line with the section reader
// to run when it matches. Predicates are pure; only the reader touches
// the cursor or the Data.
type trigger struct {
	match func(line string) bool
	parse func(p *parser, line string) error
}

// triggers is tested in order against every line the driver sees; the
// first match fires. The patterns key on disjoint fixed strings, so at
// most one can match a real log line.
var triggers = []trigger{
	{contains("OPTTOL"), (*parser).readGeoTargets},
	{indexIs("FINAL", 1), (*parser).readSCFEnergy},
	{contains("RESULTS OF MOLLER-PLESSET"), (*parser).readMP},
	{at(12, "CCD ENERGY:"), (*parser).readCCD},
	{at(8, "CCSD    ENERGY:"), (*parser).readCCSD},
	{at(8, "MBPT(2) ENERGY:"), (*parser).readMBPT2},
	{at(1, "CHARGE OF MOLECULE"), (*parser).readChargeMult},
	{contains("EXCITATION ENERGIES"), (*parser).readETEnergies},
	{at(8, "RESULTS FROM SPIN-ADAPTED ANTISYMMETRIZED PRODUCT (SAPS)"),
		(*parser).setSaps},
	{at(8, "RESULTS FROM DETERMINANT BASED ATOMIC ORBITAL CI-SINGLES"),
		(*parser).setDets},
	{at(1, "EXCITED STATE"), (*parser).readETSecs},
	{at(1, "TRANSITION FROM THE GROUND STATE TO EXCITED STATE"),
		(*parser).readETOsc},
	{after("MAXIMUM GRADIENT"), (*parser).readGeoValues},
	{at(11, "ATOMIC                      COORDINATES"),
		(*parser).readInputOrient},
	{at(12, "EQUILIBRIUM GEOMETRY LOCATED"), (*parser).setGeoOptFinished},
	{at(1, "COORDINATES OF ALL ATOMS ARE"), (*parser).readStdOrient},
	{endsWith("SCF CALCULATION"), (*parser).readSCFValues},
	{contains("NORMAL COORDINATE ANALYSIS IN THE HARMONIC APPROXIMATION"),
		(*parser).readFreqs},
	{at(5, "ATOMIC BASIS SET"), (*parser).readBasis},
	{anyIndexIs(10, "EIGENVECTORS", "MOLECULAR ORBITALS"),
		(*parser).readMOs},
	{contains("NUMBER OF OCCUPIED ORBITALS"), (*parser).readHomos},
	{contains("SYMMETRIES FOR INITIAL GUESS ORBITALS FOLLOW"),
		(*parser).confirmRestricted},
	{indexIs("TOTAL NUMBER OF ATOMS", 1), (*parser).readNatom},
	{anyIndexIs(1, "NUMBER OF CARTESIAN GAUSSIAN BASIS",
		"TOTAL NUMBER OF BASIS FUNCTIONS"), (*parser).readNBasis},
	{contains("SPHERICAL HARMONICS KEPT IN THE VARIATION SPACE"),
		(*parser).readNMO},
	{indexIs("TOTAL NUMBER OF MOS IN VARIATION SPACE", 1),
		(*parser).readNMO},
	{indexIn("OVERLAP MATRIX", 0, 1), (*parser).readOverlap},
	{contains("ECP POTENTIALS"), (*parser).readECP},
}

// Parse reads a GAMESS log from r and returns the extracted Data. A
// returned error means the parse failed as a whole; the Data built up
// to that point is not returned since it may be inconsistent.
func Parse(r io.Reader) (*Data, error) {
	s, err := NewScanner(r)
	if err != nil {
		return nil, err
	}
	p := &parser{
		s:              s,
		data:           &Data{CIHamTyp: "none"},
		firstStdOrient: true,
	}
	for {
		line, err := p.s.Next()
		if err != nil {
			// ordinary end of input
			return p.data, nil
		}
		for _, t := range triggers {
			if t.match(line) {
				if err := t.parse(p, line); err != nil {
					return nil, err
				}
				break
			}
		}
	}
}

// ParseFile parses the GAMESS log in filename.
func ParseFile(filename string) (*Data, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// predicate constructors for the trigger table

// contains matches a line holding pat anywhere.
func contains(pat string) func(string) bool {
	return func(line string) bool {
		return strings.Contains(line, pat)
	}
}

// at matches pat starting exactly at column off.
func at(off int, pat string) func(string) bool {
	return func(line string) bool {
		return len(line) >= off+len(pat) &&
			line[off:off+len(pat)] == pat
	}
}

// indexIs matches a line whose first occurrence of pat is at column
// off, the way the GAMESS banners pad their keywords.
func indexIs(pat string, off int) func(string) bool {
	return func(line string) bool {
		return strings.Index(line, pat) == off
	}
}

// anyIndexIs matches any of pats whose first occurrence is at column
// off.
func anyIndexIs(off int, pats ...string) func(string) bool {
	return func(line string) bool {
		for _, pat := range pats {
			if strings.Index(line, pat) == off {
				return true
			}
		}
		return false
	}
}

// indexIn matches pat at any of the given columns, covering the
// one-column difference between GAMESS-US and PC-GAMESS banners.
func indexIn(pat string, offs ...int) func(string) bool {
	return func(line string) bool {
		i := strings.Index(line, pat)
		for _, off := range offs {
			if i == off {
				return true
			}
		}
		return false
	}
}

// after matches pat occurring anywhere past the first column.
func after(pat string) func(string) bool {
	return func(line string) bool {
		return strings.Index(line, pat) > 0
	}
}

// endsWith matches pat at the end of the line, ignoring trailing
// blanks.
func endsWith(pat string) func(string) bool {
	return func(line string) bool {
		return strings.HasSuffix(strings.TrimRight(line, " \t\r"), pat)
	}
}

// small parsing helpers shared by the section readers

func atof(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// toFloat converts a slice of string fields, stopping at the first
// failure.
func toFloat(fields []string) ([]float64, error) {
	ret := make([]float64, len(fields))
	for i, f := range fields {
		v, err := atof(f)
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}

// convert applies units.Convert for the fixed set of unit pairs the
// parser uses. An unknown pair is a programming error, hence the
// panic.
func convert(val float64, from, to string) float64 {
	ret, err := units.Convert(val, from, to)
	if err != nil {
		panic(err)
	}
	return ret
}
