package metric

import "github.com/prometheus/client_golang/prometheus"

type Service struct {
	success *prometheus.CounterVec
	fails   *prometheus.CounterVec
	io      *prometheus.HistogramVec
}

func New() *Service {

	m := &Service{
		success: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "push",
			Name:      "processed_sends",
			Help:      "Successfully processed send requests"},
			[]string{"projectId"}),
		fails: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "push",
			Name:      "failed_sends",
			Help:      "Failed send requests"},
			[]string{"projectId"}),
		io: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "push",
			Name:      "io",
			Help:      "Time spent in I/O with FCM (in nanoseconds)"},
			[]string{"projectId"}),
	}

	for _, c := range []prometheus.Collector{
		m.success,
		m.fails,
		m.io,
	} {
		if err := prometheus.Register(c); err != nil {
			switch err.(type) {
			case prometheus.AlreadyRegisteredError:
				break
			default:
				panic(err)
			}
		}
	}

	return m
}

func (m *Service) GetProviderMetrics(projectID string) (*Provider, error) {

	var err error

	p := &Provider{}
	p.fails, err = m.fails.GetMetricWith(prometheus.Labels{"projectId": projectID})
	if err != nil {
		return nil, err
	}

	p.success, err = m.success.GetMetricWith(prometheus.Labels{"projectId": projectID})
	if err != nil {
		return nil, err
	}

	p.io, err = m.io.GetMetricWith(prometheus.Labels{"projectId": projectID})
	if err != nil {
		return nil, err
	}

	return p, nil
}
