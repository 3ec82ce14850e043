package advising

import "github.com/vfg2006/sales-advisor-api/internal/domain"

// CalculateMetrics calcula lucro e CAC. Clientes abaixo de 1 contam como 1,
// então o CAC nunca é infinito.
func CalculateMetrics(record domain.DailyRecord) domain.DerivedMetrics {
	customers := max(record.Customers, 1)

	return domain.DerivedMetrics{
		Profit: record.Sales - record.Cost,
		CAC:    record.Cost / float64(customers),
	}
}
