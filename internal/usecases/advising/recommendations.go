package advising

import "github.com/vfg2006/sales-advisor-api/internal/domain"

// Recommend gera o veredito de lucratividade seguido das recomendações ligadas aos alertas
func Recommend(metrics domain.DerivedMetrics, alerts []domain.AlertKind) []domain.Recommendation {
	recommendations := make([]domain.Recommendation, 0, 3)

	// Lucro zero conta como lucro
	if metrics.Profit < 0 {
		recommendations = append(recommendations, domain.RecommendationReduceCosts)
	} else {
		recommendations = append(recommendations, domain.RecommendationProfitable)
	}

	if domain.HasAlert(alerts, domain.AlertCACIncreased) {
		recommendations = append(recommendations, domain.RecommendationImproveAcquisition)
	}

	if domain.HasAlert(alerts, domain.AlertSalesIncreased) {
		recommendations = append(recommendations, domain.RecommendationIncreaseMarketing)
	}

	return recommendations
}
