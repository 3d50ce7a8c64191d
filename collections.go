package seedgo

import (
	"cmp"
	"slices"

	"github.com/hupe1980/seedgo/numrange"
)

// Choice draws one element of seq with uniform probability.
func Choice[T any](r *Random, seq []T) (T, error) {
	var zero T
	if len(seq) == 0 {
		return zero, ErrEmptyChoice
	}
	i, err := r.drawInt("choice", numrange.MustMinMaxInt(0, int64(len(seq)-1)))
	if err != nil {
		return zero, err
	}
	return seq[i], nil
}

// ShuffledClone returns a Fisher-Yates shuffled copy of seq, swapping in
// place from the end downward with uniform draws over [0, i]. The input is
// left unchanged.
func ShuffledClone[T any](r *Random, seq []T) ([]T, error) {
	out := slices.Clone(seq)
	for i := len(out) - 1; i > 0; i-- {
		j, err := r.drawInt("shuffle", numrange.MustMinMaxInt(0, int64(i)))
		if err != nil {
			r.metrics.RecordShuffle(len(out), err)
			r.logger.LogShuffle(len(out), err)
			return nil, err
		}
		out[i], out[j] = out[j], out[i]
	}
	r.metrics.RecordShuffle(len(out), nil)
	r.logger.LogShuffle(len(out), nil)
	return out, nil
}

// Sample returns the first count elements of a full Fisher-Yates shuffle
// of set. It fails when count is negative or exceeds the set's size.
func Sample[T any](r *Random, set []T, count int) ([]T, error) {
	if count < 0 || count > len(set) {
		return nil, &ErrSampleSize{Count: count, Size: len(set)}
	}
	shuffled, err := ShuffledClone(r, set)
	if err != nil {
		return nil, err
	}
	return shuffled[:count], nil
}

// WeightedChoice draws a key with probability proportional to its weight.
// Every weight must be a positive integer. Keys are visited in sorted
// order so equal seeds give equal picks regardless of map iteration order.
func WeightedChoice[K cmp.Ordered](r *Random, weights map[K]int64) (K, error) {
	var zero K
	if len(weights) == 0 {
		return zero, ErrEmptyChoice
	}

	keys := make([]K, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var total int64
	for _, k := range keys {
		w := weights[k]
		if w <= 0 {
			return zero, &ErrInvalidWeight{Weight: w}
		}
		total += w
	}

	draw, err := r.drawInt("weighted choice", numrange.MustMinMaxInt(0, total-1))
	if err != nil {
		return zero, err
	}

	var cumulative int64
	for _, k := range keys {
		cumulative += weights[k]
		if draw < cumulative {
			return k, nil
		}
	}
	return keys[len(keys)-1], nil
}
