// SPDX-License-Identifier: MIT

package lda

import "go.uber.org/zap"

// Option configures Estimate.
type Option func(*options)

// options holds the resolved configuration; unexported so callers go through Option.
type options struct {
	logger *zap.Logger
}

// WithLogger routes estimation diagnostics to l at debug level.
// A nil logger disables logging (the default).
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
