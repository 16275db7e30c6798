package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ReportsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mightyops_reports_generated_total",
		Help: "Report generations that completed, by form.",
	}, []string{"form"})

	Exports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mightyops_exports_total",
		Help: "Finished export artifacts, by form and kind.",
	}, []string{"form", "kind"})

	RecordsDeleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mightyops_records_deleted_total",
		Help: "Records removed through bulk delete, by form.",
	}, []string{"form"})

	RecordsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mightyops_records_created_total",
		Help: "Submitted records, by form.",
	}, []string{"form"})
)

// Handler exposes the prometheus registry on a fiber route.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
