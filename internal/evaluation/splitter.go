package evaluation

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// TrainTestSplitter partitions row indices into a train and a test side.
// A splitter holding the same seed returns the same partition for the same
// input on every call.
type TrainTestSplitter struct {
	testSize   float64
	randomSeed int64
	shuffle    bool
}

func NewTrainTestSplitter(testSize float64, randomSeed int64, shuffle bool) *TrainTestSplitter {
	return &TrainTestSplitter{
		testSize:   testSize,
		randomSeed: randomSeed,
		shuffle:    shuffle,
	}
}

func (tts *TrainTestSplitter) validate(n int) error {
	if n == 0 {
		return fmt.Errorf("cannot split empty dataset")
	}
	if tts.testSize <= 0 || tts.testSize >= 1 {
		return fmt.Errorf("test size must be between 0 and 1, got %v", tts.testSize)
	}
	return nil
}

// TestCount is the number of rows that end up on the test side of n rows.
func (tts *TrainTestSplitter) TestCount(n int) int {
	return int(math.Ceil(tts.testSize * float64(n)))
}

// Partition splits the indices 0..n-1. With shuffling enabled the indices
// are permuted by the seeded source and the first ceil(testSize*n) of them
// form the test side; without it the leading rows are kept for training.
func (tts *TrainTestSplitter) Partition(n int) (train, test []int, err error) {
	if err := tts.validate(n); err != nil {
		return nil, nil, err
	}

	testCount := tts.TestCount(n)
	trainCount := n - testCount
	if trainCount == 0 {
		return nil, nil, fmt.Errorf("test size %v leaves no training rows out of %d", tts.testSize, n)
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	if !tts.shuffle {
		return indices[:trainCount], indices[trainCount:], nil
	}

	rng := rand.New(rand.NewSource(tts.randomSeed))
	rng.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	return indices[testCount:], indices[:testCount], nil
}

// StratifiedPartition splits the indices of y so that every class keeps
// roughly the same share on both sides. Each class contributes at least one
// test row.
func (tts *TrainTestSplitter) StratifiedPartition(y []int) (train, test []int, err error) {
	if err := tts.validate(len(y)); err != nil {
		return nil, nil, err
	}

	classIndices := make(map[int][]int)
	for i, label := range y {
		classIndices[label] = append(classIndices[label], i)
	}

	// map order is random; the rng must be consumed in a fixed class order
	classes := make([]int, 0, len(classIndices))
	for class := range classIndices {
		classes = append(classes, class)
	}
	sort.Ints(classes)

	rng := rand.New(rand.NewSource(tts.randomSeed))
	for _, class := range classes {
		indices := classIndices[class]
		if tts.shuffle {
			rng.Shuffle(len(indices), func(i, j int) {
				indices[i], indices[j] = indices[j], indices[i]
			})
		}

		testCount := int(float64(len(indices)) * tts.testSize)
		if testCount == 0 {
			testCount = 1
		}
		trainCount := len(indices) - testCount

		train = append(train, indices[:trainCount]...)
		test = append(test, indices[trainCount:]...)
	}

	if len(train) == 0 {
		return nil, nil, fmt.Errorf("test size %v leaves no training rows out of %d", tts.testSize, len(y))
	}

	if tts.shuffle {
		rng.Shuffle(len(train), func(i, j int) {
			train[i], train[j] = train[j], train[i]
		})
		rng.Shuffle(len(test), func(i, j int) {
			test[i], test[j] = test[j], test[i]
		})
	}

	return train, test, nil
}

// Take returns y reordered by indices.
func Take(y []int, indices []int) []int {
	out := make([]int, len(indices))
	for i, idx := range indices {
		out[i] = y[idx]
	}
	return out
}
