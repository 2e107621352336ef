package config

// ratingConfiguration holds the Glicko-2 constants used by the rating
// module. Defaults are the values published with the Glicko-2 paper.
type ratingConfiguration struct {
	DefaultRating     float64
	DefaultRD         float64
	DefaultVolatility float64

	MaxRD   float64
	Tau     float64
	Epsilon float64

	// GlickoScale converts between the Glicko-1 rating scale and the
	// Glicko-2 internal (mu, phi) scale.
	GlickoScale float64
}

func init() {
	Settings.Rating.DefaultRating = 1500
	Settings.Rating.DefaultRD = 350
	Settings.Rating.DefaultVolatility = 0.06

	Settings.Rating.MaxRD = 350
	Settings.Rating.Tau = 0.5
	Settings.Rating.Epsilon = 1e-6

	Settings.Rating.GlickoScale = 173.7178
}
