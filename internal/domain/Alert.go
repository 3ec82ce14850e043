package domain

import (
	"encoding/json"
	"fmt"
)

// AlertKind identifica um alerta de comparação com o período anterior
type AlertKind int

const (
	AlertCACIncreased AlertKind = iota + 1
	AlertSalesIncreased
)

var alertMessages = map[AlertKind]string{
	AlertCACIncreased:   "CAC has increased compared to the previous period.",
	AlertSalesIncreased: "Sales have increased compared to the previous period.",
}

func (a AlertKind) String() string {
	if msg, ok := alertMessages[a]; ok {
		return msg
	}
	return fmt.Sprintf("AlertKind(%d)", int(a))
}

func (a AlertKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// HasAlert verifica se o tipo de alerta está presente no conjunto
func HasAlert(alerts []AlertKind, kind AlertKind) bool {
	for _, alert := range alerts {
		if alert == kind {
			return true
		}
	}
	return false
}
