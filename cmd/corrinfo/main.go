// Command corrinfo prints properties of bath correlation functions.
//
// Usage:
//
//	corrinfo [flags]
//
// Examples:
//
//	corrinfo -kind OverdampedBrownian-HighTemperature -lambda 100 -units 1/cm
//	corrinfo -kind OverdampedBrownian -matsubara 50 -temp 77
//	corrinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-bath/oqs/axis"
	"github.com/cwbudde/algo-bath/oqs/corr"
	"github.com/cwbudde/algo-bath/oqs/lineshape"
	"github.com/cwbudde/algo-bath/oqs/units"
)

func main() {
	kindName := flag.String("kind", "OverdampedBrownian-HighTemperature", "correlation function kind")
	lambda := flag.Float64("lambda", 100, "reorganization energy in the chosen units")
	unitName := flag.String("units", "1/cm", "unit system for the reorganization energy (int, 1/cm, eV, meV, THz, K)")
	temp := flag.Float64("temp", 300, "bath temperature in K")
	cortime := flag.Float64("cortime", 100, "correlation time in fs")
	matsubara := flag.Int("matsubara", 0, "Matsubara truncation order (0 = default)")
	points := flag.Int("points", 1024, "number of time grid points")
	step := flag.Float64("step", 1, "time grid step in fs")
	list := flag.Bool("list", false, "list available kinds and unit systems")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: corrinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints properties of bath correlation functions.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  corrinfo -kind OverdampedBrownian -temp 77 -matsubara 50\n")
		fmt.Fprintf(os.Stderr, "  corrinfo -lambda 0.05 -units eV\n")
	}
	flag.Parse()

	if *list {
		fmt.Println("kinds:")
		for _, k := range []corr.Kind{corr.KindOverdampedBrownianHighTemp, corr.KindOverdampedBrownian, corr.KindValueDefined} {
			fmt.Printf("  %s\n", k)
		}
		fmt.Println("units:")
		for _, u := range []units.Energy{units.Internal, units.WaveNumber, units.ElectronVolt, units.MilliElectronVolt, units.Terahertz, units.Kelvin} {
			fmt.Printf("  %s\n", u)
		}
		return
	}

	kind, err := corr.ParseKind(*kindName)
	if err != nil {
		fatal(err)
	}
	unit, err := units.Parse(*unitName)
	if err != nil {
		fatal(err)
	}

	ta, err := axis.NewTime(0, *step, *points)
	if err != nil {
		fatal(err)
	}
	cf, err := corr.New(ta, corr.Params{
		Kind:                 kind,
		Temperature:          *temp,
		CorrelationTime:      *cortime,
		ReorganizationEnergy: *lambda,
		Units:                unit,
		Matsubara:            *matsubara,
	})
	if err != nil {
		fatal(err)
	}

	g, err := lineshape.CorrelationToLineshape(ta, cf.Values())
	if err != nil {
		fatal(err)
	}
	h, err := lineshape.CorrelationToHalfIntegrated(ta, cf.Values())
	if err != nil {
		fatal(err)
	}

	last := ta.Len() - 1
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "kind\t%s\n", cf.Kind())
	fmt.Fprintf(w, "grid\t%d points, dt = %g fs, tmax = %g fs\n", ta.Len(), ta.Step(), ta.Max())
	fmt.Fprintf(w, "lambda\t%g rad/fs\n", cf.ReorganizationEnergy())
	fmt.Fprintf(w, "kB*T\t%g rad/fs\n", units.BoltzmannInternal*cf.Temperature())
	fmt.Fprintf(w, "cutoff\t%g fs\n", cf.CutoffTime())
	fmt.Fprintf(w, "C(0)\t%g %+gi\n", real(cf.Values()[0]), imag(cf.Values()[0]))
	fmt.Fprintf(w, "h(tmax)\t%g %+gi\n", real(h[last]), imag(h[last]))
	fmt.Fprintf(w, "g(tmax)\t%g %+gi\n", real(g[last]), imag(g[last]))
	w.Flush()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "corrinfo:", err)
	os.Exit(1)
}
