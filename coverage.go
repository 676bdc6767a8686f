package aadraw

// Coverage returns the fraction of a pixel covered by a shape, given the
// shape's radius (half-width for strokes) and the distance of the pixel
// centre from the shape's centre or centre line.
//
// The pixel is treated as a unit square sampled at its centre. Across the
// one-pixel band around the boundary the coverage falls off linearly with
// the signed distance from the edge:
//
//	distance <= radius-0.5 => 1 (fully inside)
//	distance >= radius+0.5 => 0 (fully outside)
//	otherwise              => radius + 0.5 - distance
//
// The result is always in [0, 1] and never increases with distance.
func Coverage(radius, distance float64) float64 {
	if distance <= radius-0.5 {
		return 1
	}
	if distance >= radius+0.5 {
		return 0
	}
	return radius + 0.5 - distance
}
