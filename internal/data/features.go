package data

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"langdata/internal/preprocessing"
)

// NonFeatureOffset is the number of leading columns that LimitNgrams adds
// on top of the requested n-gram count.
const NonFeatureOffset = 5

func (d *Dataset) deriveFeatures(limitNgrams int, dropFeatures, dropLanguages []string) error {
	df := d.Raw

	if limitNgrams > 0 {
		df = df.Select(leadingColumns(df.Ncol(), limitNgrams+NonFeatureOffset))
	}
	if len(dropFeatures) > 0 {
		df = df.Drop(dropFeatures)
	}
	// Filter ORs its arguments, so each language is removed by its own pass.
	for _, language := range dropLanguages {
		df = df.Filter(dataframe.F{
			Colname:    LanguageColumn,
			Comparator: series.Neq,
			Comparando: language,
		})
	}
	if df.Err != nil {
		return fmt.Errorf("failed to derive features: %w", df.Err)
	}

	languages := df.Col(LanguageColumn)
	if languages.Err != nil {
		return fmt.Errorf("failed to read %q column: %w", LanguageColumn, languages.Err)
	}

	encoder := preprocessing.NewLabelEncoder()
	y, err := encoder.FitTransform(languages.Records())
	if err != nil {
		return fmt.Errorf("failed to encode labels: %w", err)
	}

	X := df.Drop([]string{LanguageColumn, TextColumn})
	if X.Err != nil {
		return fmt.Errorf("failed to drop label columns: %w", X.Err)
	}

	d.Encoder = encoder
	d.Y = y
	d.X = X
	d.N = X.Nrow()
	return nil
}

func leadingColumns(ncol, width int) []int {
	if width > ncol {
		width = ncol
	}
	cols := make([]int, width)
	for i := range cols {
		cols[i] = i
	}
	return cols
}
