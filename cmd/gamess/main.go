/*
gamess parses GAMESS and PC-GAMESS log files and prints a summary of
the extracted results: atoms, energies, vibrational frequencies, and
the point group of the final geometry.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"brent/gamess"

	"github.com/BurntSushi/toml"
	symm "github.com/ntBre/chemutils/symmetry"
)

const help = `gamess summarizes GAMESS and PC-GAMESS log files.
Usage:
  gamess [flags] file.log...
Flags:
`

var (
	dump  = flag.String("dump", "", "write a TOML summary of each file to `file`")
	freqs = flag.Bool("freqs", false, "print the full list of vibrational frequencies")
)

// parseFlags parses command line flags and returns the remaining
// arguments
func parseFlags() []string {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, help)
		flag.PrintDefaults()
	}
	flag.Parse()
	return flag.Args()
}

// symbols maps atomic numbers to element symbols
var symbols = []string{
	"", "H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
}

// Summary is the TOML-friendly digest of one parsed log
type Summary struct {
	File        string
	Natom       int
	Charge      int
	Mult        int
	PointGroup  string
	Geometries  int
	SCFEnergies []float64
	MPEnergies  [][]float64
	CCEnergies  []float64
	VibFreqs    []float64
	VibIRs      []float64
}

// formatXYZ renders the last geometry in d as element-labeled
// Cartesian lines for point group detection
func formatXYZ(d *gamess.Data) string {
	var buf strings.Builder
	coords := d.AtomCoords[len(d.AtomCoords)-1]
	for i, z := range d.Atomnos {
		sym := "X"
		if z > 0 && z < len(symbols) {
			sym = symbols[z]
		}
		fmt.Fprintf(&buf, "%s %15.10f %15.10f %15.10f\n", sym,
			coords.At(i, 0), coords.At(i, 1), coords.At(i, 2))
	}
	return buf.String()
}

// pointGroup reports the point group of the final geometry, or "" if
// no geometry was parsed
func pointGroup(d *gamess.Data) string {
	if len(d.AtomCoords) == 0 || len(d.Atomnos) == 0 {
		return ""
	}
	mol := symm.ReadXYZ(strings.NewReader(formatXYZ(d)))
	return fmt.Sprintf("%v", mol.Group)
}

func summarize(file string, d *gamess.Data) Summary {
	return Summary{
		File:        file,
		Natom:       d.Natom,
		Charge:      d.Charge,
		Mult:        d.Mult,
		PointGroup:  pointGroup(d),
		Geometries:  len(d.AtomCoords),
		SCFEnergies: d.SCFEnergies,
		MPEnergies:  d.MPEnergies,
		CCEnergies:  d.CCEnergies,
		VibFreqs:    d.VibFreqs,
		VibIRs:      d.VibIRs,
	}
}

func printSummary(s Summary) {
	fmt.Printf("%s:\n", s.File)
	fmt.Printf("  atoms:      %d (charge %d, multiplicity %d)\n",
		s.Natom, s.Charge, s.Mult)
	if s.PointGroup != "" {
		fmt.Printf("  point group: %s (%d geometries)\n",
			s.PointGroup, s.Geometries)
	}
	if n := len(s.SCFEnergies); n > 0 {
		fmt.Printf("  SCF energy: %.10f eV\n", s.SCFEnergies[n-1])
	}
	if n := len(s.MPEnergies); n > 0 {
		mp := s.MPEnergies[n-1]
		fmt.Printf("  MP energy:  %.10f eV\n", mp[len(mp)-1])
	}
	if n := len(s.CCEnergies); n > 0 {
		fmt.Printf("  CC energy:  %.10f eV\n", s.CCEnergies[n-1])
	}
	if len(s.VibFreqs) > 0 {
		fmt.Printf("  vibrations: %d modes\n", len(s.VibFreqs))
		if *freqs {
			for _, f := range s.VibFreqs {
				fmt.Printf("    %10.2f cm-1\n", f)
			}
		}
	}
}

func writeDump(filename string, sums []Summary) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(struct{ Logs []Summary }{sums})
}

func main() {
	args := parseFlags()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}
	status := 0
	var sums []Summary
	for _, file := range args {
		data, err := gamess.ParseFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gamess: %s: %v\n", file, err)
			status = 1
			continue
		}
		s := summarize(file, data)
		printSummary(s)
		sums = append(sums, s)
	}
	if *dump != "" && len(sums) > 0 {
		if err := writeDump(*dump, sums); err != nil {
			fmt.Fprintf(os.Stderr, "gamess: %v\n", err)
			status = 1
		}
	}
	os.Exit(status)
}
