package data

import (
	"errors"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/rs/zerolog"

	"langdata/internal/evaluation"
	"langdata/internal/preprocessing"
)

// ErrInvalidSource is returned by New when the source is neither a file
// path nor a table.
var ErrInvalidSource = errors.New("invalid data, must be a file path or a dataframe")

// SplitConfig holds the filters and split parameters of one Split call.
type SplitConfig struct {
	// LimitNgrams keeps the first LimitNgrams+NonFeatureOffset columns. Zero keeps all.
	LimitNgrams   int
	DropFeatures  []string
	DropLanguages []string
	TestSize      float64
	RandomState   int64
	Stratify      bool
}

func DefaultSplitConfig() SplitConfig {
	return SplitConfig{
		TestSize:    0.25,
		RandomState: 42,
	}
}

// Dataset holds a raw table together with the features, labels and
// train/test partitions derived from it by the most recent Split.
type Dataset struct {
	Raw     dataframe.DataFrame
	Encoder *preprocessing.LabelEncoder

	X dataframe.DataFrame
	Y []int
	N int

	XTrain dataframe.DataFrame
	XTest  dataframe.DataFrame
	YTrain []int
	YTest  []int

	// TrainIndex and TestIndex are the rows of X on each side, in partition order.
	TrainIndex []int
	TestIndex  []int

	// Logger receives debug output from Split. New sets it to zerolog.Nop().
	Logger zerolog.Logger
}

// New loads source, which must be a path to a CSV file, a
// dataframe.DataFrame or a *dataframe.DataFrame, and splits it with the
// default split parameters.
func New(source any, limitNgrams int, dropLanguages []string) (*Dataset, error) {
	var raw dataframe.DataFrame
	switch src := source.(type) {
	case string:
		df, err := ReadTable(src)
		if err != nil {
			return nil, err
		}
		raw = df
	case dataframe.DataFrame:
		raw = src
	case *dataframe.DataFrame:
		if src == nil {
			return nil, fmt.Errorf("%w: got nil %T", ErrInvalidSource, src)
		}
		raw = *src
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidSource, source)
	}
	if raw.Err != nil {
		return nil, fmt.Errorf("invalid dataframe: %w", raw.Err)
	}

	d := &Dataset{Raw: raw, Logger: zerolog.Nop()}

	languages := raw.Col(LanguageColumn)
	if languages.Err != nil {
		return nil, fmt.Errorf("failed to read %q column: %w", LanguageColumn, languages.Err)
	}
	d.Encoder = preprocessing.NewLabelEncoder()
	y, err := d.Encoder.FitTransform(languages.Records())
	if err != nil {
		return nil, err
	}
	d.Y = y

	cfg := DefaultSplitConfig()
	cfg.LimitNgrams = limitNgrams
	cfg.DropLanguages = dropLanguages
	if err := d.Split(cfg); err != nil {
		return nil, err
	}
	return d, nil
}

// Split derives the feature matrix and label vector from the raw table and
// partitions them into train and test sides.
//
// The label encoder is refit on the filtered rows, so the integer assigned
// to a language depends on which languages survive the filters of this call.
//
// X, Y, Encoder and N are replaced before the rows are partitioned. If the
// partition step fails, XTrain, XTest, YTrain, YTest and the index slices
// still hold the previous call's split.
func (d *Dataset) Split(cfg SplitConfig) error {
	if err := d.deriveFeatures(cfg.LimitNgrams, cfg.DropFeatures, cfg.DropLanguages); err != nil {
		return err
	}

	splitter := evaluation.NewTrainTestSplitter(cfg.TestSize, cfg.RandomState, true)

	var train, test []int
	var err error
	if cfg.Stratify {
		train, test, err = splitter.StratifiedPartition(d.Y)
	} else {
		train, test, err = splitter.Partition(d.N)
	}
	if err != nil {
		return fmt.Errorf("failed to split data: %w", err)
	}

	d.XTrain = d.X.Subset(train)
	d.XTest = d.X.Subset(test)
	if d.XTrain.Err != nil {
		return fmt.Errorf("failed to subset train rows: %w", d.XTrain.Err)
	}
	if d.XTest.Err != nil {
		return fmt.Errorf("failed to subset test rows: %w", d.XTest.Err)
	}
	d.YTrain = evaluation.Take(d.Y, train)
	d.YTest = evaluation.Take(d.Y, test)
	d.TrainIndex = train
	d.TestIndex = test

	d.Logger.Debug().
		Int("rows", d.N).
		Int("features", d.X.Ncol()).
		Int("classes", d.Encoder.Len()).
		Int("train", len(train)).
		Int("test", len(test)).
		Float64("test_size", cfg.TestSize).
		Int64("seed", cfg.RandomState).
		Bool("stratify", cfg.Stratify).
		Msg("split data")
	return nil
}
