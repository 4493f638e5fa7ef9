package data

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type DataValidator struct{}

func NewDataValidator() *DataValidator {
	return &DataValidator{}
}

// ValidateDataset checks that the features, labels and partitions of d
// line up with each other.
func (dv *DataValidator) ValidateDataset(d *Dataset) error {
	if d.X.Nrow() != len(d.Y) {
		return fmt.Errorf("feature matrix and labels have different lengths: %d vs %d", d.X.Nrow(), len(d.Y))
	}
	if d.N != len(d.Y) {
		return fmt.Errorf("recorded row count %d does not match %d labels", d.N, len(d.Y))
	}

	if len(d.TrainIndex)+len(d.TestIndex) != d.N {
		return fmt.Errorf("train and test sizes %d+%d do not add up to %d rows", len(d.TrainIndex), len(d.TestIndex), d.N)
	}
	if d.XTrain.Nrow() != len(d.YTrain) || d.XTest.Nrow() != len(d.YTest) {
		return fmt.Errorf("partition features and labels have different lengths")
	}
	if d.XTrain.Ncol() != d.XTest.Ncol() {
		return fmt.Errorf("train and test sets have different feature counts: %d vs %d", d.XTrain.Ncol(), d.XTest.Ncol())
	}

	seen := make([]bool, d.N)
	for _, idx := range append(append([]int{}, d.TrainIndex...), d.TestIndex...) {
		if idx < 0 || idx >= d.N {
			return fmt.Errorf("partition index %d out of range", idx)
		}
		if seen[idx] {
			return fmt.Errorf("row %d appears in more than one partition", idx)
		}
		seen[idx] = true
	}

	return dv.ValidateLabels(d)
}

// ValidateLabels checks that every encoded label decodes to a known class.
func (dv *DataValidator) ValidateLabels(d *Dataset) error {
	if d.Encoder == nil || !d.Encoder.IsFitted {
		return fmt.Errorf("label encoder is not fitted")
	}
	if _, err := d.Encoder.InverseTransform(d.Y); err != nil {
		return fmt.Errorf("invalid labels: %w", err)
	}
	return nil
}

type FeatureStats struct {
	Name string
	Min  decimal.Decimal
	Max  decimal.Decimal
	Mean decimal.Decimal
}

type DatasetStats struct {
	Samples           int
	Features          int
	Classes           int
	Train             int
	Test              int
	ClassDistribution map[string]int
	FeatureStats      []FeatureStats
}

func (dv *DataValidator) GetDatasetStats(d *Dataset) (*DatasetStats, error) {
	stats := &DatasetStats{
		Samples:           d.N,
		Features:          d.X.Ncol(),
		Classes:           d.Encoder.Len(),
		Train:             len(d.YTrain),
		Test:              len(d.YTest),
		ClassDistribution: make(map[string]int),
	}

	languages, err := d.Encoder.InverseTransform(d.Y)
	if err != nil {
		return nil, err
	}
	for _, language := range languages {
		stats.ClassDistribution[language]++
	}

	X, err := Decimals(d.X)
	if err != nil {
		return nil, err
	}
	if len(X) == 0 {
		return stats, nil
	}

	names := d.X.Names()
	stats.FeatureStats = make([]FeatureStats, len(names))
	for j, name := range names {
		values := make([]decimal.Decimal, len(X))
		for i := range X {
			values[i] = X[i][j]
		}
		stats.FeatureStats[j] = FeatureStats{
			Name: name,
			Min:  decimal.Min(values[0], values[1:]...),
			Max:  decimal.Max(values[0], values[1:]...),
			Mean: decimal.Avg(values[0], values[1:]...),
		}
	}

	return stats, nil
}
