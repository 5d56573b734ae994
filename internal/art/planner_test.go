package art

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanSamplesEvenSpacing(t *testing.T) {
	plan := PlanSamples(10, 5)

	assert.Equal(t, []int{0, 2, 4, 6, 8}, plan)
}

func TestPlanSamplesPropertiesWhenFramesOutnumberColumns(t *testing.T) {
	cases := []struct {
		frameCount    int
		targetColumns int
	}{
		{10, 5},
		{100, 100},
		{12345, 1080},
		{7, 7},
		{1000, 1},
	}

	for _, tc := range cases {
		plan := PlanSamples(tc.frameCount, tc.targetColumns)

		require.Len(t, plan, tc.targetColumns, "frameCount=%d targetColumns=%d", tc.frameCount, tc.targetColumns)
		for i, idx := range plan {
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, tc.frameCount)
			if i > 0 {
				assert.GreaterOrEqual(t, idx, plan[i-1], "plan must be non-decreasing")
			}
		}
	}
}

func TestPlanSamplesShortVideoCollapsesToZero(t *testing.T) {
	plan := PlanSamples(3, 10)

	require.LessOrEqual(t, len(plan), 10)
	for _, idx := range plan {
		assert.Equal(t, 0, idx)
	}
}

func TestPlanSamplesDeterministic(t *testing.T) {
	assert.Equal(t, PlanSamples(500, 33), PlanSamples(500, 33))
}

func TestPlanSamplesDegenerateInputs(t *testing.T) {
	assert.Empty(t, PlanSamples(0, 10))
	assert.Empty(t, PlanSamples(10, 0))
	assert.Empty(t, PlanSamples(-1, 10))
}
