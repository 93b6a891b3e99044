package reembed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVector(t *testing.T) {
	t.Run("unit vector unchanged", func(t *testing.T) {
		v := []float32{1.0, 0.0, 0.0}
		result := NormalizeVector(v)
		assert.InDelta(t, 1.0, float64(result[0]), 0.0001)
		assert.InDelta(t, 0.0, float64(result[1]), 0.0001)
	})

	t.Run("scales to unit length", func(t *testing.T) {
		v := []float32{3.0, 4.0}
		result := NormalizeVector(v)

		var magnitude float64
		for _, val := range result {
			magnitude += float64(val) * float64(val)
		}
		assert.InDelta(t, 1.0, math.Sqrt(magnitude), 0.0001)
		assert.InDelta(t, 0.6, float64(result[0]), 0.0001)
		assert.InDelta(t, 0.8, float64(result[1]), 0.0001)
	})

	t.Run("zero vector stays zero", func(t *testing.T) {
		v := []float32{0.0, 0.0, 0.0}
		result := NormalizeVector(v)
		require.Len(t, result, 3)
		for _, val := range result {
			assert.Zero(t, val)
		}
	})

	t.Run("empty vector", func(t *testing.T) {
		assert.Empty(t, NormalizeVector([]float32{}))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		v := []float32{2.0, 0.0}
		_ = NormalizeVector(v)
		assert.Equal(t, float32(2.0), v[0])
	})
}
