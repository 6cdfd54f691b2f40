package notifier

import "github.com/prometheus/client_golang/prometheus"

var (
	metricsRendered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notices_rendered_total",
		Help: "Notice bodies rendered successfully",
	})
	metricsRenderFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notices_render_failed_total",
		Help: "Notice rendering failures",
	})
	metricsHandedOff = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notices_handed_off_total",
		Help: "Notices accepted by the configured sender",
	})
	metricsHandoffFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notices_handoff_failed_total",
		Help: "Sender rejections and transport failures",
	})
	metricsNotifySeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "notice_notify_seconds",
		Help: "Time to render and hand off a single notice",
	})
)

func init() {
	prometheus.MustRegister(
		metricsRendered,
		metricsRenderFailed,
		metricsHandedOff,
		metricsHandoffFailed,
		metricsNotifySeconds,
	)
}
