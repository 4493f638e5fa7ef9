package data

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/mat"
)

// Decimals copies df into a row-major decimal matrix. Cells that do not
// parse as numbers become zero.
func Decimals(df dataframe.DataFrame) ([][]decimal.Decimal, error) {
	if df.Err != nil {
		return nil, df.Err
	}

	r, c := df.Dims()
	X := make([][]decimal.Decimal, r)
	for i := range X {
		X[i] = make([]decimal.Decimal, c)
	}
	for j, name := range df.Names() {
		for i, v := range df.Col(name).Float() {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				X[i][j] = decimal.Zero
				continue
			}
			X[i][j] = decimal.NewFromFloat(v)
		}
	}
	return X, nil
}

// Dense copies df into a gonum matrix. NaN cells are kept as NaN.
func Dense(df dataframe.DataFrame) (*mat.Dense, error) {
	if df.Err != nil {
		return nil, df.Err
	}

	r, c := df.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("cannot build matrix from %dx%d dataframe", r, c)
	}

	m := mat.NewDense(r, c, nil)
	for j, name := range df.Names() {
		for i, v := range df.Col(name).Float() {
			m.Set(i, j, v)
		}
	}
	return m, nil
}
