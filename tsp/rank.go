package tsp

// RankCeiling is the constant C in score = C − length. With C = 0 the score
// is the exact negation of the length, so distinct lengths keep distinct scores.
const RankCeiling = 0.0

// Rank maps a candidate to the driver's ordering value: higher is better, so
// shorter tours score higher. Pure and stateless.
func Rank(c *Candidate) float64 {
	return RankCeiling - c.Length
}
