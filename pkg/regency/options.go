package regency

type options struct {
	seed        uint64
	seedSet     bool
	provider    string
	characters  int
	backstories bool
	style       string
	timePeriod  string
}

// Option configures a Storyteller.
type Option func(*options)

// WithSeed fixes the PRNG seed so the same inputs reproduce the same
// story. Without it, each Storyteller draws a fresh seed from the
// operating system.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seedSet = true
	}
}

// WithProvider selects the story provider: "classic" (default) or
// "enhanced".
func WithProvider(name string) Option {
	return func(o *options) { o.provider = name }
}

// WithCharacters sets the cast size. Default: 3.
func WithCharacters(n int) Option {
	return func(o *options) { o.characters = n }
}

// WithBackstories includes character backstories in the cast.
func WithBackstories() Option {
	return func(o *options) { o.backstories = true }
}

// WithTimelineStyle selects the timeline presentation: "boxed"
// (default) or "connector".
func WithTimelineStyle(name string) Option {
	return func(o *options) { o.style = name }
}

// WithTimePeriod sets the period phrase woven into the narration and
// the timeline's closing entry. Default: "the Regency era".
func WithTimePeriod(period string) Option {
	return func(o *options) { o.timePeriod = period }
}

func defaultOptions() options {
	return options{}
}
