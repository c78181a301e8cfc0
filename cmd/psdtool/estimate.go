package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cheggaaa/pb"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/youpy/go-wav"

	psd "github.com/cwbudde/algo-psd"
	"github.com/cwbudde/algo-psd/series"
)

var (
	estSegLen     int
	estSegStride  int
	estMethod     string
	estMaxFilter  int
	estBackend    string
	estWorkers    int
	estSampleRate float64
	estOutDir     string
	estASD        bool
)

func init() {
	f := estimateCmd.Flags()
	f.IntVar(&estSegLen, "seg-len", 4096, "segment length in samples")
	f.IntVar(&estSegStride, "seg-stride", 0, "segment stride in samples (default half the segment length)")
	f.StringVar(&estMethod, "method", "median", "averaging method: mean, median or median-mean")
	f.IntVar(&estMaxFilter, "max-filter-len", 0, "inverse-spectrum truncation length in samples, 0 disables")
	f.StringVar(&estBackend, "fft", "", "fft backend (default automatic)")
	f.IntVar(&estWorkers, "workers", 1, "parallel segment workers")
	f.Float64Var(&estSampleRate, "sample-rate", 0, "sample rate in Hz, required for text inputs")
	f.StringVar(&estOutDir, "out-dir", "", "directory for output tables (default next to each input)")
	f.BoolVar(&estASD, "asd", false, "write amplitude (sqrt of PSD) instead of power")
	rootCmd.AddCommand(estimateCmd)
}

var estimateCmd = &cobra.Command{
	Use:   "estimate <input>...",
	Short: "Welch-estimate PSDs from WAV or single-column text signals",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		method, err := psd.ParseMethod(estMethod)
		if err != nil {
			return err
		}
		stride := estSegStride
		if stride == 0 {
			stride = estSegLen / 2
		}

		var bar *pb.ProgressBar
		if len(args) > 1 && !verbose {
			bar = pb.StartNew(len(args)).Prefix("Estimating")
		}

		for _, path := range args {
			if err := estimateFile(path, method, stride); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if bar != nil {
				bar.Increment()
			}
		}
		if bar != nil {
			bar.Finish()
		}
		return nil
	},
}

func estimateFile(path string, method psd.Method, stride int) error {
	ts, err := loadSignal(path)
	if err != nil {
		return err
	}
	log.Debugf("%s: %d samples at %g Hz", path, ts.Len(), ts.SampleRate())

	estimate, err := psd.Welch(ts,
		psd.WithSegmentLength(estSegLen),
		psd.WithSegmentStride(stride),
		psd.WithMethod(method),
		psd.WithMaxFilterLen(estMaxFilter),
		psd.WithFFTBackend(estBackend),
		psd.WithWorkers(estWorkers),
	)
	if err != nil {
		return err
	}

	out := outputPath(path)
	if err := writeSeries(estimate, out, estASD); err != nil {
		return err
	}
	log.Debugf("%s: wrote %d bins at %g Hz spacing", out, estimate.Len(), estimate.DeltaF)
	return nil
}

func outputPath(input string) string {
	name := filepath.Base(input) + ".psd.txt"
	if estOutDir != "" {
		return filepath.Join(estOutDir, name)
	}
	return filepath.Join(filepath.Dir(input), name)
}

func loadSignal(path string) (*series.TimeSeries, error) {
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		return loadWAV(path)
	}
	if estSampleRate <= 0 {
		return nil, fmt.Errorf("text input needs --sample-rate")
	}
	return loadText(path, estSampleRate)
}

// loadWAV reads channel 0 of a WAV file as float-normalized samples, with
// the sample rate taken from the header.
func loadWAV(path string) (*series.TimeSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := wav.NewReader(f)
	format, err := reader.Format()
	if err != nil {
		return nil, err
	}

	var data []float64
	for {
		samples, err := reader.ReadSamples()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		for _, sample := range samples {
			data = append(data, reader.FloatValue(sample, 0))
		}
	}

	return series.NewTimeSeries(data, 1/float64(format.SampleRate))
}

// loadText reads a one-sample-per-line text signal; blank lines and
// # comments are skipped.
func loadText(path string, sampleRate float64) (*series.TimeSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var data []float64
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNo, err)
		}
		data = append(data, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return series.NewTimeSeries(data, 1/sampleRate)
}
