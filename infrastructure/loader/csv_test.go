package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVLoader_Load(t *testing.T) {
	content := "InvoiceNo,StockCode,Description,Quantity,InvoiceDate,UnitPrice,CustomerID,Country\n" +
		"536365,85123A,WHITE HANGING HEART,6,12/1/2010 8:26,2.55,17850,United Kingdom\n" +
		"536366,22633,HAND WARMER,abc,12/1/2010 8:28,1.85,17850,United Kingdom\n" +
		"536367,84879,ASSORTED COLOUR BIRD,32,12/1/2010 8:34\n" +
		"536368,22960,JAM MAKING SET,6,Unknown,4.25,13047,United Kingdom\n"

	salesLoader := NewCSVLoader(writeCSV(t, content), ',')

	records, malformed, err := salesLoader.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, malformed, "quantidade não numérica e linha curta são malformadas")
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "536365", first.InvoiceID)
	assert.Equal(t, "85123A", first.StockCode)
	require.NotNil(t, first.Description)
	assert.Equal(t, "WHITE HANGING HEART", *first.Description)
	assert.Equal(t, 6, first.Quantity)
	assert.Equal(t, "12/1/2010 8:26", first.RawInvoiceTimestamp)
	assert.Equal(t, time.Date(2010, 12, 1, 8, 26, 0, 0, time.UTC), first.InvoiceTimestamp)
	assert.InDelta(t, 2.55, first.UnitPrice, 0.001)
	assert.Equal(t, "17850", first.CustomerID)
	require.NotNil(t, first.Country)
	assert.Equal(t, "United Kingdom", *first.Country)

	// Timestamp que não interpreta não derruba a linha: o valor bruto é
	// preservado e o campo interpretado fica zerado
	second := records[1]
	assert.Equal(t, "536368", second.InvoiceID)
	assert.Equal(t, "Unknown", second.RawInvoiceTimestamp)
	assert.True(t, second.InvoiceTimestamp.IsZero())
}

func TestCSVLoader_Load_SemCabecalho(t *testing.T) {
	content := "536365,85123A,WHITE HANGING HEART,6,12/1/2010 8:26,2.55,17850,United Kingdom\n"

	salesLoader := NewCSVLoader(writeCSV(t, content), ',')

	records, malformed, err := salesLoader.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, malformed)
	require.Len(t, records, 1)
	assert.Equal(t, "536365", records[0].InvoiceID)
}

func TestCSVLoader_Load_CamposOpcionaisVazios(t *testing.T) {
	content := "InvoiceNo,StockCode,Description,Quantity,InvoiceDate,UnitPrice,CustomerID,Country\n" +
		"536365,85123A,,6,12/1/2010 8:26,2.55,,\n"

	salesLoader := NewCSVLoader(writeCSV(t, content), ',')

	records, _, err := salesLoader.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].Description)
	assert.Nil(t, records[0].Country)
	assert.Empty(t, records[0].CustomerID)
}

func TestCSVLoader_Load_DelimitadorAlternativo(t *testing.T) {
	content := "InvoiceNo;StockCode;Description;Quantity;InvoiceDate;UnitPrice;CustomerID;Country\n" +
		"536365;85123A;WHITE HANGING HEART;6;12/1/2010 8:26;2.55;17850;United Kingdom\n"

	salesLoader := NewCSVLoader(writeCSV(t, content), ';')

	records, malformed, err := salesLoader.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, malformed)
	require.Len(t, records, 1)
}

func TestCSVLoader_Load_ArquivoInexistente(t *testing.T) {
	salesLoader := NewCSVLoader(filepath.Join(t.TempDir(), "nao-existe.csv"), ',')

	records, _, err := salesLoader.Load(context.Background())

	require.Error(t, err)
	assert.Nil(t, records)
}

func TestCSVLoader_Load_ContextoCancelado(t *testing.T) {
	content := "InvoiceNo,StockCode,Description,Quantity,InvoiceDate,UnitPrice,CustomerID,Country\n" +
		"536365,85123A,WHITE HANGING HEART,6,12/1/2010 8:26,2.55,17850,United Kingdom\n"

	salesLoader := NewCSVLoader(writeCSV(t, content), ',')

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := salesLoader.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
