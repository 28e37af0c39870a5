package tallynats

const prefix = "tally.changes."

const defaultCounterName = "counter"

type config struct {
	name       string
	marshaller Marshaller
}

type Option func(cfg *config)

// ForCounter selects the counter name carried in the relay subject. Relays
// and watchers configured with the same name share a stream.
func ForCounter(name string) Option {
	return func(cfg *config) {
		cfg.name = name
	}
}

func WithMarshaller(marshaller Marshaller) Option {
	return func(cfg *config) {
		cfg.marshaller = marshaller
	}
}

func configure(options ...Option) config {
	cfg := config{
		name:       defaultCounterName,
		marshaller: JSONMarshaller{},
	}

	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

func subject(name string) string {
	return prefix + name
}
