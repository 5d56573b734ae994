package art

// PlanSamples computes which frame indices represent the movie: one index per
// output column, spaced frameCount/targetColumns apart (integer division).
// Pure and deterministic.
//
// When frameCount < targetColumns the interval truncates to zero and every
// planned index is 0. A short video simply cannot fill distinct columns; the
// degenerate plan is intended behavior, not an error.
func PlanSamples(frameCount, targetColumns int) []int {
	if frameCount <= 0 || targetColumns <= 0 {
		return nil
	}

	interval := frameCount / targetColumns

	plan := make([]int, 0, targetColumns)
	for index := 0; index < frameCount && len(plan) < targetColumns; index += interval {
		plan = append(plan, index)
	}
	return plan
}
