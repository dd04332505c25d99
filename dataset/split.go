package dataset

import (
	"math"
	"math/rand"

	"github.com/kaiseki-ml/kaiseki/pkg/errors"
)

// TrainTestSplit deterministically partitions a dataset into train and test
// subsets.
//
// The partition is a pure function of (dataset size, testFraction, seed):
// the index set [0, n) is shuffled with a Fisher–Yates shuffle driven by
// math/rand's Go 1 generator seeded with seed, then split at
// cut = floor(n * (1 - testFraction)). Train receives perm[:cut] and test
// receives perm[cut:], with rows ordered by the permutation, not by the
// original dataset order. The generator and shuffle are fixed here so two
// runs with the same inputs always produce byte-identical partitions.
//
// testFraction must lie in the open interval (0, 1).
func TrainTestSplit(ds *Dataset, testFraction float64, seed int64) (train, test *Dataset, err error) {
	if ds == nil || ds.NumSamples() == 0 {
		return nil, nil, errors.NewValueError("dataset.TrainTestSplit", "empty dataset")
	}

	if !(testFraction > 0 && testFraction < 1) {
		return nil, nil, errors.NewValueError("dataset.TrainTestSplit",
			"test fraction must be in the open interval (0, 1)")
	}

	n := ds.NumSamples()
	perm := permutation(n, seed)

	cut := int(math.Floor(float64(n) * (1 - testFraction)))
	if cut == 0 || cut == n {
		// A Dense matrix cannot represent zero rows, so a partition with an
		// empty side is rejected rather than constructed.
		return nil, nil, errors.NewValueError("dataset.TrainTestSplit",
			"test fraction leaves an empty train or test subset for this dataset size")
	}

	train = ds.Take(perm[:cut])
	test = ds.Take(perm[cut:])
	return train, test, nil
}

// permutation returns a seeded Fisher–Yates permutation of [0, n).
// The loop is written out rather than delegated to rand.Perm so the
// algorithm is pinned by this package, not by the standard library's
// implementation choice.
func permutation(n int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
