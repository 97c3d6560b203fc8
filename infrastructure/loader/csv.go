// Package loader carrega o dump de vendas em registros do domínio.
// Linhas que não podem ser interpretadas são contadas e descartadas sem
// abortar o lote
package loader

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// Colunas esperadas no dump: InvoiceNo, StockCode, Description, Quantity,
// InvoiceDate, UnitPrice, CustomerID, Country
const expectedColumns = 8

// SalesLoader fornece a sequência ordenada de registros brutos de um lote.
// O segundo retorno é a contagem de linhas malformadas descartadas
type SalesLoader interface {
	Load(ctx context.Context) ([]domain.SalesRecord, int, error)
}

type CSVLoader struct {
	path      string
	delimiter rune
}

func NewCSVLoader(path string, delimiter rune) SalesLoader {
	if delimiter == 0 {
		delimiter = ','
	}

	return &CSVLoader{path: path, delimiter: delimiter}
}

// Load lê o arquivo inteiro preservando a ordem de ingestão, que é o
// critério de desempate da deduplicação
func (l *CSVLoader) Load(ctx context.Context) ([]domain.SalesRecord, int, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "erro ao abrir o arquivo de vendas %s", l.path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = l.delimiter
	reader.FieldsPerRecord = -1

	records := make([]domain.SalesRecord, 0)
	malformed := 0
	firstRow := true

	for {
		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		default:
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			malformed++
			continue
		}

		if firstRow {
			firstRow = false
			if isHeader(row) {
				continue
			}
		}

		record, ok := parseRow(row)
		if !ok {
			malformed++
			continue
		}

		records = append(records, record)
	}

	logrus.WithFields(logrus.Fields{
		"path":      l.path,
		"records":   len(records),
		"malformed": malformed,
	}).Info("Arquivo de vendas carregado")

	return records, malformed, nil
}

// isHeader reconhece a linha de cabeçalho do dump
func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "InvoiceNo")
}

// parseRow converte uma linha do CSV em SalesRecord. Falhas numéricas tornam
// a linha malformada; o timestamp bruto é preservado para o Validator decidir
func parseRow(row []string) (domain.SalesRecord, bool) {
	if len(row) < expectedColumns {
		return domain.SalesRecord{}, false
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(row[3]))
	if err != nil {
		return domain.SalesRecord{}, false
	}

	unitPrice, err := strconv.ParseFloat(strings.TrimSpace(row[5]), 64)
	if err != nil {
		return domain.SalesRecord{}, false
	}

	record := domain.SalesRecord{
		InvoiceID:           strings.TrimSpace(row[0]),
		StockCode:           strings.TrimSpace(row[1]),
		Quantity:            quantity,
		RawInvoiceTimestamp: strings.TrimSpace(row[4]),
		UnitPrice:           unitPrice,
		CustomerID:          strings.TrimSpace(row[6]),
	}

	if description := strings.TrimSpace(row[2]); description != "" {
		record.Description = &description
	}

	if country := strings.TrimSpace(row[7]); country != "" {
		record.Country = &country
	}

	// Timestamp inválido não derruba a linha: o registro segue com o valor
	// zerado e cai na regra InvalidTimestamp do Validator
	if ts, err := utils.ParseTimestamp(record.RawInvoiceTimestamp); err == nil {
		record.InvoiceTimestamp = ts
	}

	return record, true
}
