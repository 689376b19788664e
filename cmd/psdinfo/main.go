// Command psdinfo prints reference detector noise curves.
//
// Usage:
//
//	psdinfo [flags]
//
// It tabulates the amplitude spectral density of the built-in analytic
// noise models over a log-spaced frequency band and reports where each
// curve bottoms out.
//
// Examples:
//
//	psdinfo
//	psdinfo -model aligo
//	psdinfo -flow 20 -fhigh 4096 -points 40
//	psdinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/johnveitch/lalsuite/noise"
)

var descriptions = map[string]string{
	"aligo-zerodet-highpower": "Advanced LIGO, zero-detuning high-power design",
	"iligo-srd":               "Initial LIGO science-requirements design",
}

type modelEntry struct {
	name string
	fn   noise.Func
}

func main() {
	fLow := flag.Float64("flow", 10, "lower edge of the tabulated band in Hz")
	fHigh := flag.Float64("fhigh", 2048, "upper edge of the tabulated band in Hz")
	points := flag.Int("points", 20, "number of log-spaced frequencies to print")
	model := flag.String("model", "", "comma-separated model names (default: all; see -list)")
	list := flag.Bool("list", false, "list available model names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: psdinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints amplitude spectral densities of reference noise models.\n")
		fmt.Fprintf(os.Stderr, "Without -model, prints every built-in model.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  psdinfo -model aligo\n")
		fmt.Fprintf(os.Stderr, "  psdinfo -flow 20 -fhigh 4096 -points 40\n")
		fmt.Fprintf(os.Stderr, "  psdinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	if *fLow <= 0 || *fHigh <= *fLow {
		fmt.Fprintf(os.Stderr, "error: need 0 < flow < fhigh (got %g, %g)\n", *fLow, *fHigh)
		os.Exit(1)
	}
	if *points < 2 {
		fmt.Fprintf(os.Stderr, "error: need at least 2 points\n")
		os.Exit(1)
	}

	names := noise.ModelNames()
	if *model != "" {
		names = strings.Split(*model, ",")
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching noise models\n")
		os.Exit(1)
	}

	printTable(entries, *fLow, *fHigh, *points)
	printMinima(entries, *fLow, *fHigh)
}

func printList() {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range noise.ModelNames() {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", name, descriptions[name]); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write model list: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func resolveEntries(names []string) []modelEntry {
	var result []modelEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		fn, err := noise.ModelByName(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v (use -list to see available)\n", err)
			continue
		}
		result = append(result, modelEntry{name: name, fn: fn})
	}
	return result
}

func printTable(entries []modelEntry, fLow, fHigh float64, points int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	header := "Freq [Hz]"
	rule := "---------"
	for _, e := range entries {
		header += "\t" + e.name + " [1/sqrt(Hz)]"
		rule += "\t" + strings.Repeat("-", len(e.name)+13)
	}
	if _, err := fmt.Fprintln(tw, header); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintln(tw, rule); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	ratio := math.Pow(fHigh/fLow, 1/float64(points-1))
	f := fLow
	for i := 0; i < points; i++ {
		row := fmt.Sprintf("%.2f", f)
		for _, e := range entries {
			row += fmt.Sprintf("\t%.4e", math.Sqrt(e.fn(f)))
		}
		if _, err := fmt.Fprintln(tw, row); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
		f *= ratio
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// printMinima scans a fine log grid and reports each model's best
// sensitivity inside the band.
func printMinima(entries []modelEntry, fLow, fHigh float64) {
	const steps = 1000

	fmt.Println()
	for _, e := range entries {
		ratio := math.Pow(fHigh/fLow, 1.0/steps)
		minF, minASD := fLow, math.Inf(1)
		f := fLow
		for i := 0; i <= steps; i++ {
			if asd := math.Sqrt(e.fn(f)); asd < minASD {
				minASD, minF = asd, f
			}
			f *= ratio
		}
		fmt.Printf("%s: minimum %.4e /sqrt(Hz) at %.1f Hz\n", e.name, minASD, minF)
	}
}
