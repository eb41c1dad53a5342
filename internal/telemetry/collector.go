// Package telemetry exposes the inventory KPIs as Prometheus gauges. Values
// are derived from the repository on every scrape.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rogerio-castellano/asset-inventory/internal/metrics"
	"github.com/rogerio-castellano/asset-inventory/internal/models"
	"github.com/rogerio-castellano/asset-inventory/internal/repo"
)

const namespace = "inventory"

var (
	assetsTotalDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "assets_total"),
		"Number of assets in the inventory.", nil, nil)
	assetsByStatusDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "assets_by_status"),
		"Number of assets per recognized status.", []string{"status"}, nil)
	valueTotalDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "value_total"),
		"Summed purchase price of every asset.", nil, nil)
	maintenanceDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "maintenance_bucket"),
		"Number of assets per maintenance due bucket.", []string{"bucket"}, nil)
	warrantyDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "warranty_bucket"),
		"Number of assets per warranty expiry bucket.", []string{"bucket"}, nil)
)

type Collector struct {
	assets repo.AssetRepository
	now    func() time.Time
}

func NewCollector(assets repo.AssetRepository) *Collector {
	return &Collector{assets: assets, now: time.Now}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- assetsTotalDesc
	ch <- assetsByStatusDesc
	ch <- valueTotalDesc
	ch <- maintenanceDesc
	ch <- warrantyDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	records, err := c.assets.GetAll()
	if err != nil {
		ch <- prometheus.NewInvalidMetric(assetsTotalDesc, err)
		return
	}
	ref := c.now()

	ch <- prometheus.MustNewConstMetric(assetsTotalDesc, prometheus.GaugeValue, float64(len(records)))
	ch <- prometheus.MustNewConstMetric(valueTotalDesc, prometheus.GaugeValue, metrics.TotalValue(records))

	byStatus := metrics.CountByStatus(records)
	for _, status := range models.Statuses {
		ch <- prometheus.MustNewConstMetric(assetsByStatusDesc, prometheus.GaugeValue, float64(byStatus[status]), status)
	}

	m := metrics.MaintenanceBuckets(records, ref).Counts()
	for bucket, n := range map[string]int{
		"overdue":     m.Overdue,
		"due7":        m.DueWeek,
		"due30":       m.DueMonth,
		"due90":       m.DueQuarter,
		"later":       m.Later,
		"unscheduled": m.Unscheduled,
	} {
		ch <- prometheus.MustNewConstMetric(maintenanceDesc, prometheus.GaugeValue, float64(n), bucket)
	}

	w := metrics.WarrantyBuckets(records, ref).Counts()
	for bucket, n := range map[string]int{
		"expired":  w.Expired,
		"within15": w.Within15,
		"within30": w.Within30,
		"within60": w.Within60,
		"later":    w.Later,
		"none":     w.None,
	} {
		ch <- prometheus.MustNewConstMetric(warrantyDesc, prometheus.GaugeValue, float64(n), bucket)
	}
}
