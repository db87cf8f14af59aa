package rpn

// DefaultMaxPower is the exponent magnitude from which ** stops computing
// and returns +Inf.
const DefaultMaxPower = 1_000_000

// Option configures an Evaluator.
type Option func(*config)

type config struct {
	maxPower float64
}

func defaultConfig() config {
	return config{maxPower: DefaultMaxPower}
}

// WithMaxPower sets the exponent magnitude threshold of **.
func WithMaxPower(maxPower float64) Option {
	return func(c *config) {
		c.maxPower = maxPower
	}
}
