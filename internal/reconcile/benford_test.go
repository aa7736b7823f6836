package reconcile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditlens-dev/auditlens/internal/model"
)

func TestLeadingDigit(t *testing.T) {
	assert.Equal(t, 1, leadingDigit(1234.5))
	assert.Equal(t, 9, leadingDigit(9))
	assert.Equal(t, 5, leadingDigit(0.05))
	assert.Equal(t, 0, leadingDigit(0))
	assert.Equal(t, 0, leadingDigit(math.NaN()))
}

func TestBenford_Distribution(t *testing.T) {
	rows := []model.ClassifiedRow{
		row(0, model.CategoryOther, "100", "0"),
		row(1, model.CategoryOther, "150", "0"),
		row(2, model.CategoryOther, "900", "0"),
		row(3, model.CategoryOther, "0", "120"), // net -120, leading digit 1
		row(4, model.CategoryOther, "0", "0"),   // zero net excluded
	}
	dist := benford(rows)
	require.Len(t, dist, 9)

	assert.Equal(t, 1, dist[0].Digit)
	assert.Equal(t, 3, dist[0].Count)
	assert.InDelta(t, 0.75, dist[0].Observed, 1e-9)
	assert.InDelta(t, math.Log10(2), dist[0].Expected, 1e-9)

	assert.Equal(t, 9, dist[8].Digit)
	assert.Equal(t, 1, dist[8].Count)
	assert.InDelta(t, 0.25, dist[8].Observed, 1e-9)
}

func TestBenford_EmptyWhenNoNonzeroValues(t *testing.T) {
	assert.Nil(t, benford(nil))
	assert.Nil(t, benford([]model.ClassifiedRow{row(0, model.CategoryOther, "0", "0")}))
}
