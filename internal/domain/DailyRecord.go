package domain

// DailyRecord representa o registro de um período com vendas, custo e clientes
type DailyRecord struct {
	Sales     float64         `json:"sales" yaml:"sales"`
	Cost      float64         `json:"cost" yaml:"cost"`
	Customers int             `json:"customers" yaml:"customers"`
	Previous  *PreviousRecord `json:"previous,omitempty" yaml:"previous,omitempty"`
}

// PreviousRecord representa o período anterior usado como comparativo
type PreviousRecord struct {
	Sales float64 `json:"sales" yaml:"sales"`
	Cost  float64 `json:"cost" yaml:"cost"`
	CAC   float64 `json:"CAC" yaml:"CAC"`
}

// SampleDailyRecord retorna o registro de exemplo usado pela CLI, pela API e pelo agendador
func SampleDailyRecord() DailyRecord {
	return DailyRecord{
		Sales:     12000,
		Cost:      4000,
		Customers: 100,
		Previous: &PreviousRecord{
			Sales: 10000,
			Cost:  3500,
			CAC:   35.0,
		},
	}
}
