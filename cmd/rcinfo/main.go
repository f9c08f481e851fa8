// Command rcinfo prints frequency-response properties of the emulated
// RC low-pass circuit for each solver method.
//
// Usage:
//
//	rcinfo [flags] [method-name ...]
//
// Without arguments it prints info for all three methods.
//
// Examples:
//
//	rcinfo wave_digital
//	rcinfo -r 2200 -c 1e-7 state_space closed_form
//	rcinfo -rate 96000 -fft 8192
//	rcinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-circuit/circuit/rc"
	"github.com/cwbudde/algo-circuit/measure/response"
)

type methodEntry struct {
	name string
	m    rc.Method
}

var registry = []methodEntry{
	{"wave_digital", rc.MethodWaveDigital},
	{"state_space", rc.MethodStateSpace},
	{"closed_form", rc.MethodClosedForm},
}

func main() {
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	res := flag.Float64("r", rc.DefaultResistance, "series resistance in ohms")
	capacitance := flag.Float64("c", rc.DefaultCapacitance, "shunt capacitance in farads")
	fftSize := flag.Int("fft", 4096, "FFT size for the measured response (power of two)")
	list := flag.Bool("list", false, "list available method names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rcinfo [flags] [method-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints frequency-response properties of the emulated RC low-pass.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all three solver methods.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  rcinfo wave_digital\n")
		fmt.Fprintf(os.Stderr, "  rcinfo -r 2200 -c 1e-7 state_space\n")
		fmt.Fprintf(os.Stderr, "  rcinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	entries := resolveEntries(flag.Args())
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching solver methods\n")
		os.Exit(1)
	}

	printAnalysis(entries, *rate, *res, *capacitance, *fftSize)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []methodEntry {
	if len(names) == 0 {
		return registry
	}

	byName := make(map[string]methodEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []methodEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown method %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printAnalysis(entries []methodEntry, rate, res, capacitance float64, fftSize int) {
	analyticCutoff := 1 / (2 * math.Pi * res * capacitance)

	fmt.Printf("R = %g ohm, C = %g F, fs = %g Hz, analytic cutoff = %.2f Hz\n\n",
		res, capacitance, rate, analyticCutoff)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Method\tDC Gain\tCutoff [Hz]\tGain @fc [dB]\tGain @10fc [dB]\tNyquist [dB]\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t-------\t-----------\t-------------\t---------------\t------------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, e := range entries {
		s, err := rc.New(rate,
			rc.WithMethod(e.m),
			rc.WithResistance(res),
			rc.WithCapacitance(capacitance),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			os.Exit(1)
		}

		mag, err := response.Magnitude(s, fftSize)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			os.Exit(1)
		}

		if _, err := fmt.Fprintf(tw, "%s\t%.6f\t%.2f\t%.3f\t%.3f\t%.2f\n",
			e.name,
			mag[0],
			measuredCutoff(mag, fftSize, rate),
			db(magnitudeAt(mag, fftSize, rate, analyticCutoff)),
			db(magnitudeAt(mag, fftSize, rate, 10*analyticCutoff)),
			db(mag[len(mag)-1]),
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// measuredCutoff finds the -3 dB point of the measured response by
// linear interpolation between the bins straddling 1/sqrt(2).
func measuredCutoff(mag []float64, fftSize int, rate float64) float64 {
	target := 1 / math.Sqrt2

	for bin := 1; bin < len(mag); bin++ {
		if mag[bin] > target {
			continue
		}

		f0 := response.BinFrequency(bin-1, fftSize, rate)
		f1 := response.BinFrequency(bin, fftSize, rate)
		m0, m1 := mag[bin-1], mag[bin]

		if m0 == m1 {
			return f1
		}

		return f0 + (f1-f0)*(m0-target)/(m0-m1)
	}

	return math.NaN()
}

// magnitudeAt reads the measured curve at the bin nearest freqHz.
func magnitudeAt(mag []float64, fftSize int, rate, freqHz float64) float64 {
	bin := int(math.Round(freqHz / rate * float64(fftSize)))
	if bin < 0 {
		bin = 0
	}
	if bin >= len(mag) {
		bin = len(mag) - 1
	}
	return mag[bin]
}

func db(m float64) float64 {
	return 20 * math.Log10(m)
}
