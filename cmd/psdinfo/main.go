// Command psdinfo prints the averaged power spectral density of a synthetic
// test signal.
//
// Usage:
//
//	psdinfo [flags]
//
// Examples:
//
//	psdinfo
//	psdinfo -size 256 -rate 1000 -freq 50
//	psdinfo -segments 16 -window hann -db
//	psdinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-psd/dsp/core"
	"github.com/cwbudde/algo-psd/dsp/window"
	"github.com/cwbudde/algo-psd/measure/channel"
)

var windowsByName = map[string]window.Type{
	"rectangular":     window.TypeRectangular,
	"hann":            window.TypeHann,
	"hamming":         window.TypeHamming,
	"blackman":        window.TypeBlackman,
	"blackman-harris": window.TypeBlackmanHarris,
}

func main() {
	size := flag.Int("size", 256, "samples per segment")
	rate := flag.Float64("rate", 1000, "sampling rate in Hz")
	freq := flag.Float64("freq", 50, "test tone frequency in Hz")
	amplitude := flag.Float64("amplitude", 1000, "test tone amplitude in counts")
	segments := flag.Int("segments", 8, "number of segments to average")
	windowName := flag.String("window", "hamming", "window function (use -list to see available)")
	db := flag.Bool("db", false, "print power in dB instead of linear units")
	list := flag.Bool("list", false, "list available window names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: psdinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the averaged power spectral density of a synthetic sine tone.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  psdinfo -size 256 -rate 1000 -freq 50\n")
		fmt.Fprintf(os.Stderr, "  psdinfo -segments 16 -window hann -db\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	windowType, ok := windowsByName[strings.ToLower(strings.TrimSpace(*windowName))]
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown window %q (use -list to see available)\n", *windowName)
		os.Exit(1)
	}

	recorder, err := channel.NewRecorder("psdinfo",
		channel.WithSampleRate(*rate),
		channel.WithSegmentSize(*size),
		channel.WithWindow(windowType),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if _, err := recorder.Push(sineStream(*freq, *amplitude, *rate, *size**segments)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printReport(recorder.Report(), *rate, *size, *db)
}

// sineStream samples a continuous sine tone, phase running across segment
// boundaries like a real acquisition stream.
func sineStream(freq, amplitude, rate float64, length int) []int16 {
	out := make([]int16, length)
	step := 2 * math.Pi * freq / rate
	for i := range out {
		out[i] = int16(math.Round(amplitude * math.Sin(step*float64(i))))
	}
	return out
}

func printList() {
	names := make([]string, 0, len(windowsByName))
	for n := range windowsByName {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func printReport(report channel.Report, rate float64, size int, db bool) {
	fmt.Printf("segments: %d  samples: %d  resolution: %.4f Hz\n",
		report.Segments, report.Stats.Count, rate/float64(size))
	fmt.Printf("signal: min %d  max %d  mean %.2f  deviation %.2f\n",
		report.Stats.Min, report.Stats.Max, report.Stats.Mean, report.Stats.Deviation)
	fmt.Printf("core bin: %d (%.2f Hz)\n\n", report.Core.Index, report.Core.Frequency)

	unit := "Power"
	if db {
		unit = "Power [dB]"
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Bin\tFrequency [Hz]\t%s\n", unit)
	fmt.Fprintf(tw, "---\t--------------\t-----\n")
	for i, power := range report.Bins {
		value := power
		if db {
			value = core.LinearPowerToDB(power)
		}
		fmt.Fprintf(tw, "%d\t%.4f\t%.6g\n", i, float64(i)*rate/float64(size), value)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
