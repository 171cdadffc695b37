package availability

// Confidence weights for coverage vs duration. Full-group availability
// matters more than raw length.
const (
	coverageWeight = 0.7
	durationWeight = 0.3
)

// Confidence scores a candidate free slot in [0,1] from how many known
// members are covered and how close the duration comes to the ideal
// meeting length.
func Confidence(freeCount, knownCount, durationMinutes, idealDurationMinutes int) float64 {
	if knownCount <= 0 || idealDurationMinutes <= 0 {
		return 0
	}
	coverage := float64(freeCount) / float64(knownCount)
	durationScore := float64(durationMinutes) / float64(idealDurationMinutes)
	if durationScore > 1 {
		durationScore = 1
	}
	score := coverageWeight*coverage + durationWeight*durationScore
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
