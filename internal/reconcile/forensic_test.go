package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditlens-dev/auditlens/internal/model"
)

func TestDirectionalAnomalies(t *testing.T) {
	rows := []model.ClassifiedRow{
		row(0, model.CategoryAsset, "100", "500"),     // flagged
		row(1, model.CategoryExpense, "0", "300"),     // flagged
		row(2, model.CategoryAsset, "500", "100"),     // normal
		row(3, model.CategoryLiability, "100", "500"), // liabilities carry credits
	}
	flags := directionalAnomalies(rows)
	require.Len(t, flags, 2)
	assert.Equal(t, []int{0}, flags[0].Rows)
	assert.Equal(t, []int{1}, flags[1].Rows)
}

func TestRoundSumAnomalies(t *testing.T) {
	rows := []model.ClassifiedRow{
		row(0, model.CategoryOther, "10000", "0"),    // flagged
		row(1, model.CategoryOther, "25000", "0"),    // flagged
		row(2, model.CategoryOther, "9000", "0"),     // below the floor
		row(3, model.CategoryOther, "10500", "0"),    // not a multiple of 1000
		row(4, model.CategoryOther, "10000.50", "0"), // not exact
		row(5, model.CategoryOther, "0", "10000"),    // credits are not checked
	}
	flags := roundSumAnomalies(rows)
	require.Len(t, flags, 2)
	assert.Equal(t, []int{0}, flags[0].Rows)
	assert.Equal(t, []int{1}, flags[1].Rows)
}

func TestDuplicateAmounts(t *testing.T) {
	rows := []model.ClassifiedRow{
		row(0, model.CategoryOther, "150", "0"),
		row(1, model.CategoryOther, "0", "150"), // same absolute net
		row(2, model.CategoryOther, "99", "0"),
		row(3, model.CategoryOther, "0", "0"), // zero nets never group
		row(4, model.CategoryOther, "0", "0"),
	}
	flags := duplicateAmounts(rows)
	require.Len(t, flags, 1)
	assert.Equal(t, model.AnomalyDuplicateAmount, flags[0].Kind)
	assert.Equal(t, []int{0, 1}, flags[0].Rows)
}

func TestStatisticalOutliers(t *testing.T) {
	rows := []model.ClassifiedRow{
		row(0, model.CategoryOther, "100", "0"),
		row(1, model.CategoryOther, "102", "0"),
		row(2, model.CategoryOther, "98", "0"),
		row(3, model.CategoryOther, "101", "0"),
		row(4, model.CategoryOther, "99", "0"),
		row(5, model.CategoryOther, "5000", "0"),
	}
	flags := statisticalOutliers(rows, 2.0)
	require.Len(t, flags, 1)
	assert.Equal(t, []int{5}, flags[0].Rows)
	assert.Greater(t, flags[0].ZScore, 2.0)
}

func TestStatisticalOutliers_SkippedWhenDegenerate(t *testing.T) {
	assert.Nil(t, statisticalOutliers([]model.ClassifiedRow{
		row(0, model.CategoryOther, "100", "0"),
	}, 2.0))

	// Identical values: sigma is zero.
	assert.Nil(t, statisticalOutliers([]model.ClassifiedRow{
		row(0, model.CategoryOther, "100", "0"),
		row(1, model.CategoryOther, "100", "0"),
	}, 2.0))
}

func TestMissingHeight(t *testing.T) {
	tbl := model.NormalizedTable{
		Labels: []string{"Site", "Latitude", "Longitude", "Height"},
		Rows: [][]string{
			{"A", "31.10", "77.17", "2200"},
			{"B", "32.24", "77.19", ""}, // flagged
			{"C", "", "", ""},           // no coordinates, ignored
		},
	}
	cols := model.ColumnMap{Description: 0, Amount: -1, Date: -1, Latitude: 1, Longitude: 2, Height: 3}

	flags := MissingHeight(tbl, cols)
	require.Len(t, flags, 1)
	assert.Equal(t, model.AnomalyMissingHeight, flags[0].Kind)
	assert.Equal(t, []int{1}, flags[0].Rows)
}

func TestMissingHeight_NoGeoColumns(t *testing.T) {
	cols := model.ColumnMap{Description: 0, Amount: -1, Date: -1, Latitude: -1, Longitude: -1, Height: -1}
	assert.Nil(t, MissingHeight(model.NormalizedTable{}, cols))
}
