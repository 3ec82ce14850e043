package advising

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-advisor-api/internal/domain"
)

const (
	dataKey      = "data"
	previousKey  = "previous"
	yesterdayKey = "yesterday"
)

// rawDailyRecord guarda os campos opcionais como ponteiros para aplicar os valores padrão
type rawDailyRecord struct {
	Sales     *float64       `mapstructure:"sales"`
	Cost      *float64       `mapstructure:"cost"`
	Customers *float64       `mapstructure:"customers"`
	Previous  map[string]any `mapstructure:"previous"`
	Yesterday map[string]any `mapstructure:"yesterday"`
}

type rawPreviousRecord struct {
	Sales *float64 `mapstructure:"sales"`
	Cost  *float64 `mapstructure:"cost"`
	CAC   *float64 `mapstructure:"CAC"`
}

// DecodeState aceita o envelope {"data": {...}} ou o registro diretamente
func DecodeState(raw map[string]any) (domain.DailyRecord, error) {
	data, ok := raw[dataKey]
	if !ok {
		return DecodeDailyRecord(raw)
	}

	record, ok := data.(map[string]any)
	if !ok {
		return domain.DailyRecord{}, newRecordError(fmt.Sprintf("'%s' expected a map, got '%T'", dataKey, data))
	}

	return DecodeDailyRecord(record)
}

// DecodeDailyRecord converte um mapa genérico (JSON ou YAML) em DailyRecord.
// Campos ausentes recebem os valores padrão; campos com tipo errado geram RecordError.
func DecodeDailyRecord(raw map[string]any) (domain.DailyRecord, error) {
	var in rawDailyRecord
	if err := decodeStrict(raw, &in); err != nil {
		return domain.DailyRecord{}, newRecordError(decodeErrorDetails(err, ""))
	}

	record := domain.DailyRecord{
		Sales:     valueOrDefault(in.Sales, 0),
		Cost:      valueOrDefault(in.Cost, 0),
		Customers: 1,
	}
	if in.Customers != nil {
		customers, err := customerCount(*in.Customers)
		if err != nil {
			return domain.DailyRecord{}, err
		}
		record.Customers = customers
	}

	// "yesterday" é aceito como alias; "previous" tem prioridade
	prevKey, prevRaw := previousKey, in.Previous
	if len(prevRaw) == 0 && len(in.Yesterday) > 0 {
		prevKey, prevRaw = yesterdayKey, in.Yesterday
	}

	// Mapa vazio equivale a período anterior ausente
	if len(prevRaw) == 0 {
		return record, nil
	}

	var prev rawPreviousRecord
	if err := decodeStrict(prevRaw, &prev); err != nil {
		return domain.DailyRecord{}, newRecordError(decodeErrorDetails(err, prevKey))
	}

	record.Previous = &domain.PreviousRecord{
		Sales: valueOrDefault(prev.Sales, 0),
		Cost:  valueOrDefault(prev.Cost, 0),
		CAC:   valueOrDefault(prev.CAC, 0),
	}

	return record, nil
}

// customerCount aceita apenas números inteiros que cabem em int
func customerCount(value float64) (int, error) {
	if value != math.Trunc(value) || value < math.MinInt || value >= math.MaxInt {
		return 0, newRecordError(fmt.Sprintf("'customers' expected an integer, got '%s'",
			strconv.FormatFloat(value, 'g', -1, 64)))
	}
	return int(value), nil
}

func decodeStrict(input any, output any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           output,
		TagName:          "mapstructure",
		WeaklyTypedInput: false,
		MatchName: func(mapKey, fieldName string) bool {
			return mapKey == fieldName
		},
	})
	if err != nil {
		return errors.Wrap(err, "advising: build decoder")
	}

	return decoder.Decode(input)
}

// decodeErrorDetails achata as mensagens do mapstructure, prefixando o campo aninhado
func decodeErrorDetails(err error, prefix string) string {
	messages := []string{err.Error()}

	var mapErr *mapstructure.Error
	if errors.As(err, &mapErr) {
		messages = mapErr.Errors
	}

	details := make([]string, 0, len(messages))
	for _, msg := range messages {
		if prefix != "" {
			msg = "'" + prefix + "." + strings.TrimPrefix(msg, "'")
		}
		details = append(details, msg)
	}

	return strings.Join(details, "; ")
}

func valueOrDefault[T any](value *T, fallback T) T {
	if value == nil {
		return fallback
	}
	return *value
}
