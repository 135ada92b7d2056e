package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(
		tokensIssuedTotal,
		tokenRedemptionsTotal,
		adminLoginsTotal,
	)
}

var (
	tokensIssuedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "access_tokens_issued_total",
			Help: "Access tokens minted by operators.",
		},
	)

	tokenRedemptionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "access_token_redemptions_total",
			Help: "Gate redemption attempts by result (valid/invalid/error).",
		},
		[]string{"result"},
	)

	adminLoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_logins_total",
			Help: "Admin keyword logins by result (ok/denied/error).",
		},
		[]string{"result"},
	)
)

func AddTokensIssued(n int) {
	tokensIssuedTotal.Add(float64(n))
}

func IncRedemption(result string) {
	tokenRedemptionsTotal.WithLabelValues(norm(result)).Inc()
}

func IncAdminLogin(result string) {
	adminLoginsTotal.WithLabelValues(norm(result)).Inc()
}
