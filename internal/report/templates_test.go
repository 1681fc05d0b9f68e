package report_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"courier/internal/record"
	"courier/internal/report"
)

var generatedAt = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func mustCreateTemplate(t *testing.T, kind string) report.Template {
	t.Helper()

	tpl, err := report.NewTemplateRegistry().Create(kind)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", kind, err)
	}
	return tpl
}

func TestGenerateSkeleton(t *testing.T) {
	tpl := mustCreateTemplate(t, "financial")
	data := record.Record{"income": 100.0, "expenses": 40.0}

	content, err := report.Generate(tpl, data, generatedAt)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !strings.HasPrefix(content, strings.Repeat("=", 60)+"\n           REPORTE FINANCIERO\n") {
		t.Fatalf("missing header banner:\n%s", content)
	}
	if !strings.Contains(content, "Fecha de generación: 2024-01-15 10:30:00\n") {
		t.Fatalf("missing generation timestamp:\n%s", content)
	}
}

func TestSalesReportAggregates(t *testing.T) {
	tpl := mustCreateTemplate(t, "sales")
	data := record.Record{
		"period": "Enero 2024",
		"sales": []any{
			map[string]any{"product": "Laptop", "amount": 10.0},
			map[string]any{"product": "Mouse", "amount": 20.0},
		},
	}

	content, err := report.Generate(tpl, data, generatedAt)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !strings.Contains(content, "Total de ventas: $30.00") {
		t.Fatalf("missing sales total:\n%s", content)
	}
	if !strings.Contains(content, "Número de transacciones: 2") {
		t.Fatalf("missing transaction count:\n%s", content)
	}
	if !strings.Contains(content, "  • Producto: Laptop - $10.00") {
		t.Fatalf("missing itemized line:\n%s", content)
	}
}

func TestInventoryReportCountsDistinctCategories(t *testing.T) {
	tpl := mustCreateTemplate(t, "inventory")
	data := record.Record{
		"items": []any{
			map[string]any{"name": "Laptop", "category": "A", "quantity": 2.0},
			map[string]any{"name": "Mouse", "category": "A", "quantity": 5.0},
			map[string]any{"name": "Monitor", "category": "B", "quantity": 1.0},
		},
	}

	content, err := report.Generate(tpl, data, generatedAt)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !strings.Contains(content, "Categorías: 2") {
		t.Fatalf("missing distinct category count:\n%s", content)
	}
	if !strings.Contains(content, "Total de productos: 8") {
		t.Fatalf("missing unit total:\n%s", content)
	}
	if !strings.Contains(content, "  • Monitor (B): 1 unidades") {
		t.Fatalf("missing itemized line:\n%s", content)
	}
}

func TestFinancialReportBalance(t *testing.T) {
	tpl := mustCreateTemplate(t, "financial")
	data := record.Record{"income": 50000.0, "expenses": 32000.0}

	content, err := report.Generate(tpl, data, generatedAt)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !strings.Contains(content, "Ingresos: $50000.00") {
		t.Fatalf("missing income line:\n%s", content)
	}
	if !strings.Contains(content, "Gastos: $32000.00") {
		t.Fatalf("missing expenses line:\n%s", content)
	}
	if !strings.Contains(content, "Balance: $18000.00") {
		t.Fatalf("missing balance line:\n%s", content)
	}
}

func TestSalesReportMissingPeriod(t *testing.T) {
	tpl := mustCreateTemplate(t, "sales")
	data := record.Record{
		"sales": []any{map[string]any{"product": "Laptop", "amount": 10.0}},
	}

	_, err := report.Generate(tpl, data, generatedAt)
	if !errors.Is(err, record.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if !strings.Contains(err.Error(), "period") {
		t.Fatalf("error should name the missing field: %v", err)
	}
}

func TestTemplateRegistryKeys(t *testing.T) {
	keys := report.NewTemplateRegistry().Keys()
	want := []string{"financial", "inventory", "sales"}
	if len(keys) != len(want) {
		t.Fatalf("unexpected keys: %v", keys)
	}
	for i, key := range want {
		if keys[i] != key {
			t.Fatalf("unexpected keys: %v", keys)
		}
	}
}
