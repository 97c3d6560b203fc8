package utils

import (
	"time"

	"github.com/pkg/errors"
)

// Formatos aceitos para o timestamp da nota fiscal, na ordem de tentativa.
// O primeiro cobre o dump clássico de vendas online (ex: "12/1/2010 8:26")
var timestampLayouts = []string{
	"1/2/2006 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// ParseTimestamp tenta interpretar o texto de data/hora de uma venda.
// Retorna erro quando nenhum formato conhecido reconhece o valor
func ParseTimestamp(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("timestamp vazio")
	}

	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}

	return time.Time{}, errors.Errorf("timestamp não reconhecido: %q", raw)
}
