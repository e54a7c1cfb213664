package scene

// PickThresholdSq is the maximum squared ray-to-ornament distance, in
// world units, for a pinch to count as a hit.
const PickThresholdSq = 5.0

// Candidate is a pickable ornament: an id plus its current world
// position. The presentation layer supplies the list fresh each frame;
// iteration order is preserved for stable tie-breaking.
type Candidate struct {
	ID       string
	Position Vec3
}

// Pick returns the id of the candidate closest to the ray, considering
// only candidates within PickThresholdSq. Ties keep the first candidate
// encountered. The second result is false when nothing is in range.
func Pick(ray Ray, candidates []Candidate) (string, bool) {
	bestID := ""
	bestDistSq := PickThresholdSq
	hit := false

	for _, c := range candidates {
		distSq := ray.DistSqToPoint(c.Position)
		if distSq < bestDistSq {
			bestID = c.ID
			bestDistSq = distSq
			hit = true
		}
	}

	return bestID, hit
}
