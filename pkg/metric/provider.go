package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Provider struct {
	success prometheus.Counter
	fails   prometheus.Counter
	io      prometheus.Observer
}

func (p *Provider) SuccessInc() {
	p.success.Inc()
}

func (p *Provider) FailsInc() {
	p.fails.Inc()
}

// NewIOTimer starts a timer for one provider interaction. The returned
// function stops it and records the duration.
func (p *Provider) NewIOTimer() func() {

	start := time.Now()
	return func() {
		p.io.Observe(float64(time.Since(start).Nanoseconds()))
	}
}
