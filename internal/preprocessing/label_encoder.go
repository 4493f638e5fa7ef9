package preprocessing

import (
	"encoding/gob"
	"fmt"
	"os"
	"sort"
)

// LabelEncoder maps categorical values onto the dense range [0, K).
// Classes are numbered in sorted order, so fitting the same set of values
// always yields the same mapping.
type LabelEncoder struct {
	ClassToInt map[string]int
	IntToClass []string
	IsFitted   bool
}

func NewLabelEncoder() *LabelEncoder {
	return &LabelEncoder{
		ClassToInt: make(map[string]int),
	}
}

// Fit replaces any previous mapping with one built from labels.
func (le *LabelEncoder) Fit(labels []string) {
	unique := make(map[string]struct{})
	for _, label := range labels {
		unique[label] = struct{}{}
	}

	classes := make([]string, 0, len(unique))
	for label := range unique {
		classes = append(classes, label)
	}
	sort.Strings(classes)

	le.ClassToInt = make(map[string]int, len(classes))
	for idx, label := range classes {
		le.ClassToInt[label] = idx
	}
	le.IntToClass = classes
	le.IsFitted = true
}

func (le *LabelEncoder) Transform(labels []string) ([]int, error) {
	if !le.IsFitted {
		return nil, fmt.Errorf("label encoder must be fitted before transform")
	}

	result := make([]int, len(labels))
	for i, label := range labels {
		val, ok := le.ClassToInt[label]
		if !ok {
			return nil, fmt.Errorf("unknown label: %q", label)
		}
		result[i] = val
	}

	return result, nil
}

func (le *LabelEncoder) FitTransform(labels []string) ([]int, error) {
	le.Fit(labels)
	return le.Transform(labels)
}

func (le *LabelEncoder) InverseTransform(encoded []int) ([]string, error) {
	if !le.IsFitted {
		return nil, fmt.Errorf("label encoder must be fitted before inverse transform")
	}

	result := make([]string, len(encoded))
	for i, val := range encoded {
		if val < 0 || val >= len(le.IntToClass) {
			return nil, fmt.Errorf("unknown encoding: %d", val)
		}
		result[i] = le.IntToClass[val]
	}

	return result, nil
}

// Classes returns the fitted classes, indexed by their encoding.
func (le *LabelEncoder) Classes() []string {
	classes := make([]string, len(le.IntToClass))
	copy(classes, le.IntToClass)
	return classes
}

func (le *LabelEncoder) Len() int {
	return len(le.IntToClass)
}

func (le *LabelEncoder) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return gob.NewEncoder(file).Encode(le)
}

func (le *LabelEncoder) Load(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return gob.NewDecoder(file).Decode(le)
}
