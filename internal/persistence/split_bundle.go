package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gopkg.in/yaml.v3"

	"langdata/internal/data"
	"langdata/internal/preprocessing"
)

const (
	LabelColumn = "label"

	trainFile    = "train.csv"
	testFile     = "test.csv"
	encoderFile  = "encoder.gob"
	metadataFile = "metadata.yaml"
)

// SplitBundle is a finished train/test split as written to disk.
type SplitBundle struct {
	Dataset  *data.Dataset
	Metadata BundleMetadata
}

type BundleMetadata struct {
	Source        string    `yaml:"source"`
	CreatedAt     time.Time `yaml:"created_at"`
	Rows          int       `yaml:"rows"`
	Train         int       `yaml:"train"`
	Test          int       `yaml:"test"`
	Features      []string  `yaml:"features"`
	Classes       []string  `yaml:"classes"`
	LimitNgrams   int       `yaml:"limit_ngrams,omitempty"`
	DropFeatures  []string  `yaml:"drop_features,omitempty"`
	DropLanguages []string  `yaml:"drop_languages,omitempty"`
	TestSize      float64   `yaml:"test_size"`
	RandomState   int64     `yaml:"random_state"`
	Stratify      bool      `yaml:"stratify"`
}

func NewSplitBundle(d *data.Dataset, source string, cfg data.SplitConfig) *SplitBundle {
	return &SplitBundle{
		Dataset: d,
		Metadata: BundleMetadata{
			Source:        source,
			CreatedAt:     time.Now(),
			Rows:          d.N,
			Train:         len(d.YTrain),
			Test:          len(d.YTest),
			Features:      d.X.Names(),
			Classes:       d.Encoder.Classes(),
			LimitNgrams:   cfg.LimitNgrams,
			DropFeatures:  cfg.DropFeatures,
			DropLanguages: cfg.DropLanguages,
			TestSize:      cfg.TestSize,
			RandomState:   cfg.RandomState,
			Stratify:      cfg.Stratify,
		},
	}
}

// Save writes both partitions with their labels, the encoder and the
// metadata into dir.
func (sb *SplitBundle) Save(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	d := sb.Dataset
	if err := writePartition(filepath.Join(dir, trainFile), d.XTrain, d.YTrain); err != nil {
		return err
	}
	if err := writePartition(filepath.Join(dir, testFile), d.XTest, d.YTest); err != nil {
		return err
	}

	if err := d.Encoder.Save(filepath.Join(dir, encoderFile)); err != nil {
		return fmt.Errorf("failed to save encoder: %w", err)
	}

	return sb.SaveMetadata(filepath.Join(dir, metadataFile))
}

func (sb *SplitBundle) SaveMetadata(filename string) error {
	out, err := yaml.Marshal(sb.Metadata)
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	return os.WriteFile(filename, out, 0644)
}

func writePartition(filename string, X dataframe.DataFrame, y []int) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	df := exactFloats(X).Mutate(series.New(y, series.Int, LabelColumn))
	if df.Err != nil {
		return fmt.Errorf("failed to attach labels: %w", df.Err)
	}
	if err := df.WriteCSV(file); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// exactFloats rewrites float columns as strings in shortest round-trip form.
// gota formats floats with six fixed decimals on write.
func exactFloats(df dataframe.DataFrame) dataframe.DataFrame {
	for _, name := range df.Names() {
		col := df.Col(name)
		if col.Type() != series.Float {
			continue
		}
		values := col.Float()
		formatted := make([]string, len(values))
		for i, v := range values {
			formatted[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		df = df.Mutate(series.New(formatted, series.String, name))
	}
	return df
}

// Partition is one side of a saved split.
type Partition struct {
	X dataframe.DataFrame
	Y []int
}

// SavedSplit is what LoadSplit reads back from a directory written by Save.
type SavedSplit struct {
	Train    Partition
	Test     Partition
	Encoder  *preprocessing.LabelEncoder
	Metadata BundleMetadata
}

func LoadSplit(dir string) (*SavedSplit, error) {
	train, err := readPartition(filepath.Join(dir, trainFile))
	if err != nil {
		return nil, err
	}
	test, err := readPartition(filepath.Join(dir, testFile))
	if err != nil {
		return nil, err
	}

	encoder := preprocessing.NewLabelEncoder()
	if err := encoder.Load(filepath.Join(dir, encoderFile)); err != nil {
		return nil, fmt.Errorf("failed to load encoder: %w", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, metadataFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}
	var meta BundleMetadata
	if err := yaml.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}

	return &SavedSplit{
		Train:    train,
		Test:     test,
		Encoder:  encoder,
		Metadata: meta,
	}, nil
}

func readPartition(filename string) (Partition, error) {
	df, err := data.ReadTable(filename)
	if err != nil {
		return Partition{}, err
	}

	labels := df.Col(LabelColumn)
	if labels.Err != nil {
		return Partition{}, fmt.Errorf("%s has no %q column: %w", filename, LabelColumn, labels.Err)
	}
	y, err := labels.Int()
	if err != nil {
		return Partition{}, fmt.Errorf("invalid labels in %s: %w", filename, err)
	}

	X := df.Drop(LabelColumn)
	if X.Err != nil {
		return Partition{}, X.Err
	}
	return Partition{X: X, Y: y}, nil
}
