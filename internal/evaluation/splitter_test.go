package evaluation

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainTestSplitter_Partition(t *testing.T) {

	type test struct {
		n        int
		testSize float64
		shuffle  bool
		train    int
		test     int
		err      bool
	}

	tests := map[string]test{
		"default-quarter": {
			n:        100,
			testSize: 0.25,
			shuffle:  true,
			train:    75,
			test:     25,
		},
		"rounds-test-up": {
			n:        10,
			testSize: 0.25,
			shuffle:  true,
			train:    7,
			test:     3,
		},
		"no-shuffle": {
			n:        8,
			testSize: 0.25,
			train:    6,
			test:     2,
		},
		"single-row": {
			n:        1,
			testSize: 0.25,
			shuffle:  true,
			err:      true,
		},
		"empty": {
			n:        0,
			testSize: 0.25,
			err:      true,
		},
		"zero-test-size": {
			n:        10,
			testSize: 0,
			err:      true,
		},
		"full-test-size": {
			n:        10,
			testSize: 1,
			err:      true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			splitter := NewTrainTestSplitter(tt.testSize, 42, tt.shuffle)
			train, test, err := splitter.Partition(tt.n)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, train, tt.train)
			assert.Len(t, test, tt.test)
			assertDisjointCover(t, tt.n, train, test)
		})
	}
}

func TestTrainTestSplitter_NoShuffleKeepsOrder(t *testing.T) {
	train, test, err := NewTrainTestSplitter(0.25, 42, false).Partition(8)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, train)
	assert.Equal(t, []int{6, 7}, test)
}

func TestTrainTestSplitter_Deterministic(t *testing.T) {
	splitter := NewTrainTestSplitter(0.3, 7, true)

	train1, test1, err := splitter.Partition(50)
	require.NoError(t, err)
	train2, test2, err := splitter.Partition(50)
	require.NoError(t, err)
	assert.Equal(t, train1, train2)
	assert.Equal(t, test1, test2)

	other, _, err := NewTrainTestSplitter(0.3, 8, true).Partition(50)
	require.NoError(t, err)
	assert.NotEqual(t, train1, other)
}

func TestTrainTestSplitter_StratifiedPartition(t *testing.T) {
	y := make([]int, 0, 40)
	for i := 0; i < 20; i++ {
		y = append(y, 0)
	}
	for i := 0; i < 12; i++ {
		y = append(y, 1)
	}
	for i := 0; i < 8; i++ {
		y = append(y, 2)
	}

	splitter := NewTrainTestSplitter(0.25, 42, true)
	train, test, err := splitter.StratifiedPartition(y)
	require.NoError(t, err)
	assertDisjointCover(t, len(y), train, test)

	counts := map[int]int{}
	for _, label := range Take(y, test) {
		counts[label]++
	}
	assert.Equal(t, map[int]int{0: 5, 1: 3, 2: 2}, counts)

	train2, test2, err := splitter.StratifiedPartition(y)
	require.NoError(t, err)
	assert.Equal(t, train, train2)
	assert.Equal(t, test, test2)
}

func TestTake(t *testing.T) {
	assert.Equal(t, []int{30, 10}, Take([]int{10, 20, 30}, []int{2, 0}))
	assert.Equal(t, []int{}, Take([]int{10}, []int{}))
}

func assertDisjointCover(t *testing.T, n int, train, test []int) {
	t.Helper()
	all := append(append([]int{}, train...), test...)
	sort.Ints(all)
	require.Len(t, all, n)
	for i, idx := range all {
		assert.Equal(t, i, idx)
	}
}
