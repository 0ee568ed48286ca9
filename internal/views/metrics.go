package views

import "github.com/prometheus/client_golang/prometheus"

var viewRenders = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "postboard",
	Name:      "view_renders_total",
	Help:      "Rendered views, by view and resulting phase.",
}, []string{"view", "phase"})

func init() {
	prometheus.MustRegister(viewRenders)
}
