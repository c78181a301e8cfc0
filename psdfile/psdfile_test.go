package psdfile

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-psd/series"
)

func writeTempTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing table: %v", err)
	}
	return path
}

func TestFromASDTextRoundTrip(t *testing.T) {
	const (
		length = 1024
		deltaF = 0.1
		cutoff = 10.0
	)

	var buf bytes.Buffer
	asd := make([]float64, length)
	for k := range asd {
		f := float64(k) * deltaF
		asd[k] = math.Sqrt(f)
		fmt.Fprintf(&buf, "%.18e %.18e\n", f, asd[k])
	}
	path := writeTempTable(t, buf.String())

	psd, err := FromASDText(path, length, deltaF, cutoff)
	if err != nil {
		t.Fatalf("FromASDText returned error: %v", err)
	}
	if psd.Len() != length || psd.DeltaF != deltaF {
		t.Fatalf("unexpected grid: %d bins at %v Hz", psd.Len(), psd.DeltaF)
	}

	for k := range psd.Data {
		want := asd[k] * asd[k]
		if float64(k)*deltaF < cutoff {
			want = 0
		}
		if psd.Data[k] != want {
			t.Fatalf("bin %d: expected %v, got %v", k, want, psd.Data[k])
		}
	}
}

func TestFromPSDTextDoesNotSquare(t *testing.T) {
	path := writeTempTable(t, "0 1\n1 4\n2 9\n")

	psd, err := FromPSDText(path, 3, 1, 0)
	if err != nil {
		t.Fatalf("FromPSDText returned error: %v", err)
	}
	for k, want := range []float64{1, 4, 9} {
		if psd.Data[k] != want {
			t.Fatalf("bin %d: expected %v, got %v", k, want, psd.Data[k])
		}
	}

	squared, err := FromASDText(path, 3, 1, 0)
	if err != nil {
		t.Fatalf("FromASDText returned error: %v", err)
	}
	for k, want := range []float64{1, 16, 81} {
		if squared.Data[k] != want {
			t.Fatalf("bin %d: expected squared value %v, got %v", k, want, squared.Data[k])
		}
	}
}

func TestFromTextSkipsCommentsAndBlankLines(t *testing.T) {
	path := writeTempTable(t, `# detector noise table
# frequency value

0 1

  1 2
2 3
`)

	psd, err := FromPSDText(path, 3, 1, 0)
	if err != nil {
		t.Fatalf("FromPSDText returned error: %v", err)
	}
	for k, want := range []float64{1, 2, 3} {
		if psd.Data[k] != want {
			t.Fatalf("bin %d: expected %v, got %v", k, want, psd.Data[k])
		}
	}
}

func TestFromTextInterpolatesBetweenNodes(t *testing.T) {
	path := writeTempTable(t, "0 0\n2 4\n")

	psd, err := FromPSDText(path, 3, 1, 0)
	if err != nil {
		t.Fatalf("FromPSDText returned error: %v", err)
	}
	for k, want := range []float64{0, 2, 4} {
		if psd.Data[k] != want {
			t.Fatalf("bin %d: expected %v, got %v", k, want, psd.Data[k])
		}
	}
}

func TestFromTextFormatErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"empty table", ""},
		{"comments only", "# nothing here\n"},
		{"three columns", "0 1 2\n"},
		{"single column", "0\n"},
		{"bad value", "0 abc\n"},
		{"bad frequency", "xyz 1\n"},
		{"repeated frequency", "0 1\n0 2\n"},
		{"decreasing frequency", "1 1\n0.5 2\n"},
	}

	for _, tc := range cases {
		path := writeTempTable(t, tc.content)
		if _, err := FromPSDText(path, 4, 1, 0); !errors.Is(err, ErrFormat) {
			t.Fatalf("%s: expected ErrFormat, got %v", tc.name, err)
		}
	}
}

func TestFromTextRangeError(t *testing.T) {
	path := writeTempTable(t, "0 1\n25 1\n50 1\n")

	if _, err := FromPSDText(path, 1024, 0.1, 10); !errors.Is(err, ErrRange) {
		t.Fatalf("expected ErrRange, got %v", err)
	}
}

func TestFromTextCutoffWaivesCoverage(t *testing.T) {
	// The table starts at 5 Hz, so bins below that are uncovered; with a
	// 10 Hz cutoff zeroing them anyway, the read succeeds.
	path := writeTempTable(t, "5 1\n103 1\n")

	psd, err := FromASDText(path, 1024, 0.1, 10)
	if err != nil {
		t.Fatalf("FromASDText returned error: %v", err)
	}
	for k, v := range psd.Data {
		want := 1.0
		if float64(k)*0.1 < 10 {
			want = 0
		}
		if v != want {
			t.Fatalf("bin %d: expected %v, got %v", k, want, v)
		}
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	in := &series.FrequencySeries{Data: []float64{1, 4, 9, 16}, DeltaF: 0.5}

	var buf bytes.Buffer
	if err := WriteASDText(&buf, in); err != nil {
		t.Fatalf("WriteASDText returned error: %v", err)
	}
	path := writeTempTable(t, buf.String())

	out, err := FromASDText(path, in.Len(), in.DeltaF, 0)
	if err != nil {
		t.Fatalf("FromASDText returned error: %v", err)
	}
	for k := range in.Data {
		if out.Data[k] != in.Data[k] {
			t.Fatalf("bin %d: expected %v, got %v", k, in.Data[k], out.Data[k])
		}
	}

	buf.Reset()
	if err := WritePSDText(&buf, in); err != nil {
		t.Fatalf("WritePSDText returned error: %v", err)
	}
	path = writeTempTable(t, buf.String())

	out, err = FromPSDText(path, in.Len(), in.DeltaF, 0)
	if err != nil {
		t.Fatalf("FromPSDText returned error: %v", err)
	}
	for k := range in.Data {
		if out.Data[k] != in.Data[k] {
			t.Fatalf("bin %d: expected %v, got %v", k, in.Data[k], out.Data[k])
		}
	}
}

func TestWriteRejectsBadInput(t *testing.T) {
	var buf bytes.Buffer

	if err := WritePSDText(&buf, nil); err == nil {
		t.Fatal("expected an error for a nil psd")
	}
	if err := WritePSDText(&buf, &series.FrequencySeries{DeltaF: 1}); err == nil {
		t.Fatal("expected an error for an empty psd")
	}
	if err := WritePSDText(&buf, &series.FrequencySeries{Data: []float64{1}}); err == nil {
		t.Fatal("expected an error for missing bin spacing")
	}
}

func TestFromFileMissing(t *testing.T) {
	if _, err := FromASDText(filepath.Join(t.TempDir(), "missing.txt"), 4, 1, 0); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestFromReaderRejectsBadGrid(t *testing.T) {
	path := writeTempTable(t, "0 1\n1 1\n")

	if _, err := FromPSDText(path, 0, 1, 0); err == nil {
		t.Fatal("expected an error for zero length")
	}
	if _, err := FromPSDText(path, 4, 0, 0); err == nil {
		t.Fatal("expected an error for zero bin spacing")
	}
	if _, err := FromPSDText(path, 4, 1, -1); err == nil {
		t.Fatal("expected an error for a negative cutoff")
	}
}
