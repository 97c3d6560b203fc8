// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// SalesRecord representa uma linha de venda conforme ingerida pelo loader.
// Os registros são imutáveis dentro do pipeline: cada estágio produz uma
// nova coleção em vez de alterar a anterior.
type SalesRecord struct {
	InvoiceID   string  `json:"invoice_id"`
	StockCode   string  `json:"stock_code"`
	Description *string `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	// InvoiceTimestamp é o valor interpretado; fica zerado quando o texto
	// original não pôde ser interpretado como data/hora
	InvoiceTimestamp time.Time `json:"invoice_timestamp"`
	// RawInvoiceTimestamp preserva o texto original da coluna de data,
	// usado pela regra de validação e pela chave de deduplicação
	RawInvoiceTimestamp string  `json:"-"`
	UnitPrice           float64 `json:"unit_price"`
	CustomerID          string  `json:"customer_id"`
	Country             *string `json:"country,omitempty"`
}

// InvoiceDate retorna a componente de data (sem hora) do timestamp da venda
func (r SalesRecord) InvoiceDate() string {
	return r.InvoiceTimestamp.Format("2006-01-02")
}

// Revenue retorna a receita da linha (quantidade * preço unitário)
func (r SalesRecord) Revenue() float64 {
	return float64(r.Quantity) * r.UnitPrice
}
