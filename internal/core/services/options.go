package services

import (
	"time"

	"github.com/CodyBrat/PlayNxt/internal/core/ports"
	"github.com/sirupsen/logrus"
)

type options struct {
	now   func() time.Time
	log   logrus.FieldLogger
	cache ports.VenueCache
}

type Option func(*options)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) { o.log = log }
}

// WithVenueCache lets AuthService drop cached listings that embed an owner's
// profile when that profile changes.
func WithVenueCache(cache ports.VenueCache) Option {
	return func(o *options) { o.cache = cache }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
