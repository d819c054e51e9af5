package collection

import "go.uber.org/zap"

// DefaultValuesFilename is the reserved name of a collection's default-values
// file.
const DefaultValuesFilename = "_default_values.yaml"

// Option configures a Collection.
type Option func(*options)

type options struct {
	logger           *zap.Logger
	defaultsFilename string
}

func defaultOptions() options {
	return options{
		logger:           zap.NewNop(),
		defaultsFilename: DefaultValuesFilename,
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithDefaultsFilename overrides the reserved default-values filename.
func WithDefaultsFilename(name string) Option {
	return func(o *options) {
		if name != "" {
			o.defaultsFilename = name
		}
	}
}
