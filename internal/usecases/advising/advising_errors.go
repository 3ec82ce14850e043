package advising

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrMalformedRecord = errors.New("malformed daily record")
)

// RecordError descreve um campo de entrada com tipo inválido
type RecordError struct {
	Err     error
	Details string
}

func (e *RecordError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

func newRecordError(details string) *RecordError {
	return &RecordError{
		Err:     ErrMalformedRecord,
		Details: details,
	}
}

// IsMalformedRecord verifica se o erro foi causado por uma entrada mal formada
func IsMalformedRecord(err error) bool {
	return errors.Is(err, ErrMalformedRecord)
}
