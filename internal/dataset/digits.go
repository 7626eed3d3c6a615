package dataset

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gharib85/qibo/internal/quantum"
)

// pixelsPerDigit is the flattened 8x8 image size; it matches the 2^6
// amplitude space of the 6-qubit register exactly.
const pixelsPerDigit = 64

// Per-class feature constants fed to the feature-enhanced ansatz. Fixed
// labels, not values derived from the pixels.
const (
	classAFeature = 1.0
	classBFeature = 2.0
)

//go:embed digits.csv
var embeddedDigits []byte

// DigitsProvider produces L2-normalized handwritten digit vectors from
// two classes. With an empty Path it serves the embedded 20-sample set
// (ten per class); otherwise it reads a CSV export in the same layout:
// class label followed by 64 pixel intensities per row.
type DigitsProvider struct {
	Path string
}

// NewDigitsProvider creates a provider backed by the embedded sample set.
func NewDigitsProvider() *DigitsProvider {
	return &DigitsProvider{}
}

// Load parses and normalizes the digit vectors.
func (p *DigitsProvider) Load() ([]Sample, error) {
	var r io.Reader
	if p.Path == "" {
		r = strings.NewReader(string(embeddedDigits))
	} else {
		f, err := os.Open(p.Path)
		if err != nil {
			return nil, fmt.Errorf("opening digits file: %w", err)
		}
		defer f.Close()
		r = f
	}
	return parseDigits(r)
}

func parseDigits(r io.Reader) ([]Sample, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading digits csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("digits csv is empty")
	}

	samples := make([]Sample, 0, len(records))
	for row, record := range records {
		if len(record) != pixelsPerDigit+1 {
			return nil, fmt.Errorf("digits row %d has %d fields, want %d", row, len(record), pixelsPerDigit+1)
		}

		label, err := strconv.Atoi(record[0])
		if err != nil || (label != 0 && label != 1) {
			return nil, fmt.Errorf("digits row %d has invalid class label %q", row, record[0])
		}

		pixels := make([]float64, pixelsPerDigit)
		for i, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("digits row %d field %d: %w", row, i+1, err)
			}
			pixels[i] = v
		}

		state, err := normalizedState(pixels)
		if err != nil {
			return nil, fmt.Errorf("digits row %d: %w", row, err)
		}

		feature := classAFeature
		if label == 1 {
			feature = classBFeature
		}
		samples = append(samples, Sample{State: state, Feature: feature})
	}
	return samples, nil
}

// normalizedState scales a raw pixel vector to unit L2 norm so it is a
// valid amplitude vector.
func normalizedState(pixels []float64) (*quantum.State, error) {
	state := &quantum.State{Qubits: 6, Amplitudes: make([]complex128, pixelsPerDigit)}
	for i, v := range pixels {
		state.Amplitudes[i] = complex(v, 0)
	}
	if err := state.Normalize(); err != nil {
		return nil, err
	}
	return state, nil
}
