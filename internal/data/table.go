package data

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

const (
	LanguageColumn = "language"
	TextColumn     = "text"
)

// ReadTable loads a comma-delimited file with a header row.
func ReadTable(filename string) (dataframe.DataFrame, error) {
	file, err := os.Open(filename)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	df, err := LoadTable(file)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return df, nil
}

// LoadTable parses CSV from r. Column types are detected, except for the
// label and text columns which are always read as strings.
func LoadTable(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.WithTypes(map[string]series.Type{
			LanguageColumn: series.String,
			TextColumn:     series.String,
		}),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, df.Err
	}
	return df, nil
}
