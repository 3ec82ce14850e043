package advising

import "github.com/vfg2006/sales-advisor-api/internal/domain"

// EvaluateAlerts compara as métricas atuais com o período anterior.
// Sem período anterior o resultado é vazio. O alerta de CAC vem sempre antes do de vendas.
func EvaluateAlerts(record domain.DailyRecord, metrics domain.DerivedMetrics) []domain.AlertKind {
	alerts := make([]domain.AlertKind, 0, 2)

	previous := record.Previous
	if previous == nil {
		return alerts
	}

	if previous.CAC < metrics.CAC {
		alerts = append(alerts, domain.AlertCACIncreased)
	}

	if previous.Sales < record.Sales {
		alerts = append(alerts, domain.AlertSalesIncreased)
	}

	return alerts
}
