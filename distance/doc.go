// Package distance provides distance and similarity measures over
// vecmath vectors.
//
// Every function accepts any mix of dense, sparse and binary vectors and
// picks the cheapest algorithm through the vecmath arithmetic, so a sparse
// query against a sparse corpus never materializes zeros.
//
// # Supported Metrics
//
//   - MetricL2: Squared Euclidean distance (default)
//   - MetricCosine: Cosine similarity
//   - MetricDot: Dot product (inner product)
//   - MetricHamming: Count of differing positions
//
// # Usage
//
//	dist, err := distance.SquaredL2(a, b)
//	sim, err := distance.Cosine(a, b)
//	unit, err := distance.NormalizeL2(v)
package distance
