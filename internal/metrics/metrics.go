package metrics

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "fitzone_"

var (
	ClientsRegisteredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitzone_clients_registered_total",
			Help: "Total number of registration attempts",
		},
		[]string{"result"},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitzone_logins_total",
			Help: "Total number of login attempts",
		},
		[]string{"result"},
	)

	SubscriptionsPurchasedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitzone_subscriptions_purchased_total",
			Help: "Total number of subscriptions purchased",
		},
		[]string{"kind"},
	)

	SubscriptionsActivatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitzone_subscriptions_activated_total",
			Help: "Total number of subscriptions activated",
		},
		[]string{"kind"},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitzone_recommendations_total",
			Help: "Total number of recommendations served",
		},
		[]string{"kind"},
	)

	BalanceTopUpsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitzone_balance_topups_total",
			Help: "Total number of balance top-ups",
		},
	)

	BonusesAppliedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitzone_bonuses_applied_total",
			Help: "Total number of special-offer bonuses applied",
		},
	)

	Clients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitzone_clients",
			Help: "Number of registered clients",
		},
	)
)

func RecordRegistration(result string) {
	ClientsRegisteredTotal.WithLabelValues(result).Inc()
}

func RecordLogin(result string) {
	LoginsTotal.WithLabelValues(result).Inc()
}

func RecordPurchase(kind string) {
	SubscriptionsPurchasedTotal.WithLabelValues(kind).Inc()
}

func RecordActivation(kind string) {
	SubscriptionsActivatedTotal.WithLabelValues(kind).Inc()
}

func RecordRecommendation(kind string) {
	RecommendationsTotal.WithLabelValues(kind).Inc()
}

func RecordTopUp() {
	BalanceTopUpsTotal.Inc()
}

func RecordBonus() {
	BonusesAppliedTotal.Inc()
}

func SetClients(n int) {
	Clients.Set(float64(n))
}

// Sample is one labelled value of a fitzone_* metric.
type Sample struct {
	Name   string
	Labels string
	Value  float64
}

// Snapshot reads the fitzone_* counters and gauges from the default registry.
func Snapshot() ([]Sample, error) {
	return snapshot(prometheus.DefaultGatherer)
}

func snapshot(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	var out []Sample
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), namespace) {
			continue
		}
		for _, m := range mf.GetMetric() {
			s := Sample{Name: mf.GetName(), Labels: labels(m.GetLabel())}
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				s.Value = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				s.Value = m.GetGauge().GetValue()
			default:
				continue
			}
			out = append(out, s)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Labels < out[j].Labels
	})
	return out, nil
}

func labels(pairs []*dto.LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.GetName()+"="+p.GetValue())
	}
	return strings.Join(parts, ",")
}
