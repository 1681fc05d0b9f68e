package report

import (
	"fmt"

	"courier/internal/record"
	"courier/internal/registry"
)

// Known report kind keys.
const (
	KindSales     = "sales"
	KindInventory = "inventory"
	KindFinancial = "financial"
)

// NewTemplateRegistry builds the registry of report templates.
func NewTemplateRegistry() *registry.Registry[Template] {
	templates := registry.New[Template]("report")
	templates.Register(KindSales, func() Template { return salesTemplate{} })
	templates.Register(KindInventory, func() Template { return inventoryTemplate{} })
	templates.Register(KindFinancial, func() Template { return financialTemplate{} })
	return templates
}

type salesTemplate struct{}

func (salesTemplate) Title() string { return "REPORTE DE VENTAS" }

func (salesTemplate) Body(b *Builder, data record.Record) error {
	sales, err := data.Slice("sales")
	if err != nil {
		return err
	}
	period, err := data.String("period")
	if err != nil {
		return err
	}

	var total float64
	for _, sale := range sales {
		amount, err := sale.Float("amount")
		if err != nil {
			return err
		}
		total += amount
	}

	b.Line(fmt.Sprintf("Total de ventas: $%.2f", total))
	b.Line(fmt.Sprintf("Número de transacciones: %d", len(sales)))
	b.Line("Periodo: " + period)
	b.Line("")

	b.Line("Detalle de ventas:")
	b.Separator()

	for _, sale := range sales {
		product, err := sale.String("product")
		if err != nil {
			return err
		}
		amount, err := sale.Float("amount")
		if err != nil {
			return err
		}
		b.Line(fmt.Sprintf("  • Producto: %s - $%.2f", product, amount))
	}
	return nil
}

type inventoryTemplate struct{}

func (inventoryTemplate) Title() string { return "REPORTE DE INVENTARIO" }

func (inventoryTemplate) Body(b *Builder, data record.Record) error {
	items, err := data.Slice("items")
	if err != nil {
		return err
	}

	totalUnits := 0
	categories := make(map[string]struct{})
	for _, item := range items {
		quantity, err := item.Int("quantity")
		if err != nil {
			return err
		}
		category, err := item.String("category")
		if err != nil {
			return err
		}
		totalUnits += quantity
		categories[category] = struct{}{}
	}

	b.Line(fmt.Sprintf("Total de productos: %d", totalUnits))
	b.Line(fmt.Sprintf("Categorías: %d", len(categories)))
	b.Line("")

	b.Line("Inventario actual:")
	b.Separator()

	for _, item := range items {
		name, err := item.String("name")
		if err != nil {
			return err
		}
		category, err := item.String("category")
		if err != nil {
			return err
		}
		quantity, err := item.Int("quantity")
		if err != nil {
			return err
		}
		b.Line(fmt.Sprintf("  • %s (%s): %d unidades", name, category, quantity))
	}
	return nil
}

type financialTemplate struct{}

func (financialTemplate) Title() string { return "REPORTE FINANCIERO" }

func (financialTemplate) Body(b *Builder, data record.Record) error {
	income, err := data.Float("income")
	if err != nil {
		return err
	}
	expenses, err := data.Float("expenses")
	if err != nil {
		return err
	}
	balance := income - expenses

	b.Line(fmt.Sprintf("Ingresos: $%.2f", income))
	b.Line(fmt.Sprintf("Gastos: $%.2f", expenses))
	b.Line(fmt.Sprintf("Balance: $%.2f", balance))
	return nil
}
