package series

import (
	"math"
	"testing"
)

func TestNewTimeSeries(t *testing.T) {
	ts, err := NewTimeSeries([]float64{1, 2, 3, 4}, 0.5)
	if err != nil {
		t.Fatalf("NewTimeSeries error: %v", err)
	}

	if ts.Len() != 4 {
		t.Fatalf("Len=%d want=4", ts.Len())
	}

	if math.Abs(ts.SampleRate()-2) > 1e-15 {
		t.Fatalf("SampleRate=%f want=2", ts.SampleRate())
	}

	if math.Abs(ts.Duration()-2) > 1e-15 {
		t.Fatalf("Duration=%f want=2", ts.Duration())
	}
}

func TestNewTimeSeriesRejectsBadInput(t *testing.T) {
	if _, err := NewTimeSeries(nil, 0.5); err == nil {
		t.Fatalf("expected error for empty data")
	}

	if _, err := NewTimeSeries([]float64{1}, 0); err == nil {
		t.Fatalf("expected error for zero spacing")
	}

	if _, err := NewTimeSeries([]float64{1}, -1); err == nil {
		t.Fatalf("expected error for negative spacing")
	}
}

func TestFrequencySeriesGrid(t *testing.T) {
	fs, err := NewFrequencySeries(make([]float64, 5), 0.25)
	if err != nil {
		t.Fatalf("NewFrequencySeries error: %v", err)
	}

	if math.Abs(fs.Nyquist()-1) > 1e-15 {
		t.Fatalf("Nyquist=%f want=1", fs.Nyquist())
	}

	if math.Abs(fs.FrequencyAt(3)-0.75) > 1e-15 {
		t.Fatalf("FrequencyAt(3)=%f want=0.75", fs.FrequencyAt(3))
	}

	freqs := fs.Frequencies()
	if len(freqs) != 5 {
		t.Fatalf("Frequencies length=%d want=5", len(freqs))
	}

	for k, f := range freqs {
		if math.Abs(f-float64(k)*0.25) > 1e-15 {
			t.Fatalf("Frequencies[%d]=%f want=%f", k, f, float64(k)*0.25)
		}
	}
}

func TestFrequencySeriesClone(t *testing.T) {
	fs, err := NewFrequencySeries([]float64{1, 2, 3}, 0.1)
	if err != nil {
		t.Fatalf("NewFrequencySeries error: %v", err)
	}

	cp := fs.Clone()
	cp.Data[0] = 99

	if fs.Data[0] != 1 {
		t.Fatalf("Clone shares memory with original")
	}

	if cp.DeltaF != fs.DeltaF {
		t.Fatalf("Clone DeltaF=%f want=%f", cp.DeltaF, fs.DeltaF)
	}
}

func TestNewFrequencySeriesRejectsBadInput(t *testing.T) {
	if _, err := NewFrequencySeries(nil, 0.1); err == nil {
		t.Fatalf("expected error for empty data")
	}

	if _, err := NewFrequencySeries([]float64{1}, 0); err == nil {
		t.Fatalf("expected error for zero spacing")
	}
}
