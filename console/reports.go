package console

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hlubek/gestao-varejo/report"
	"github.com/hlubek/gestao-varejo/schema"
)

var reportTitles = []string{
	"Top 3 Vendedores Por Período",
	"Top Clientes Por Período",
	"Vendas por Região Por Período",
	"Compras por Período",
}

// reportMenu shows the reports until the user goes back.
func (a *App) reportMenu(ctx context.Context) error {
	for {
		i, ok, err := a.prompt.Choose("Escolha um relatório:", reportTitles, "Voltar")
		if errors.Is(err, errInvalidChoice) {
			a.prompt.Println(msgInvalidChoice)
			continue
		}
		if err != nil || !ok {
			return err
		}

		period, err := a.askPeriod()
		if err != nil {
			return err
		}
		if period == nil {
			continue
		}

		logger := a.logger.With(
			zap.String("operation", newOperationID()),
			zap.String("action", "report"),
			zap.String("report", reportTitles[i]),
			zap.Stringer("period", period),
		)

		switch i {
		case 0:
			err = a.topSellers(ctx, *period)
		case 1:
			err = a.topClients(ctx, *period)
		case 2:
			err = a.salesByRegion(ctx, *period)
		case 3:
			err = a.productPurchases(ctx, *period)
		}
		if err != nil {
			logger.Error("report failed", zap.Error(err))
			a.prompt.Println("Não foi possível gerar o relatório.")
			continue
		}
		logger.Info("report shown")
	}
}

// askPeriod returns nil after telling the user the dates are invalid.
func (a *App) askPeriod() (*report.Period, error) {
	from, err := a.prompt.Ask("Por favor, informe a data inicial (no formato YYYY-MM-DD): ")
	if err != nil {
		return nil, err
	}
	to, err := a.prompt.Ask("Por favor, informe a data final (no formato YYYY-MM-DD): ")
	if err != nil {
		return nil, err
	}

	p, err := report.ParsePeriod(from, to)
	if err != nil {
		a.logger.Info("invalid period", zap.Error(err))
		a.prompt.Println("Datas fornecidas são inválidas. Certifique-se de informar as datas no formato correto (YYYY-MM-DD).")
		return nil, nil
	}
	return &p, nil
}

func (a *App) money(d decimal.Decimal) string {
	return a.printer.Sprintf("%.2f", d.InexactFloat64())
}

func (a *App) topSellers(ctx context.Context, p report.Period) error {
	sellers, err := a.reports.TopSellers(ctx, p)
	if err != nil {
		return err
	}
	if len(sellers) == 0 {
		a.prompt.Println("Nenhum vendedor encontrado no período especificado.")
		return nil
	}

	a.prompt.Printf("Top Vendedores do Período %s:\n", p)
	for i, s := range sellers {
		a.prompt.Printf("Posição %d: %s - Total de Vendas: R$ %s - Estado: %s\n", i+1, s.Employee, a.money(s.Total), s.State)
	}
	return nil
}

func (a *App) topClients(ctx context.Context, p report.Period) error {
	clients, err := a.reports.TopClients(ctx, p)
	if err != nil {
		return err
	}
	if len(clients) == 0 {
		a.prompt.Println("Nenhum cliente encontrado no período especificado.")
		return nil
	}

	a.prompt.Printf("Top Clientes no período %s:\n", p)
	for _, c := range clients {
		a.prompt.Printf("Nome: %s - Valor Total Compras: R$ %s - Cidade: %s\n", c.Client, a.money(c.Total), c.City)
	}
	return nil
}

func (a *App) salesByRegion(ctx context.Context, p report.Period) error {
	sales, err := a.reports.SalesByRegion(ctx, p)
	if err != nil {
		return err
	}
	if len(sales) == 0 {
		a.prompt.Println("Nenhuma venda encontrada por região no período especificado.")
		return nil
	}

	a.prompt.Printf("Relatório de Vendas por Região no período %s:\n", p)
	city := ""
	for i, s := range sales {
		if i == 0 || s.City != city {
			a.prompt.Printf("Cidade: %s\n", s.City)
			city = s.City
		}
		a.prompt.Printf("  - Funcionário: %s\n", s.Employee)
		a.prompt.Printf("  - Cliente: %s\n", s.Client)
		a.prompt.Printf("  - Data da Venda: %s\n", s.Date.Format(schema.DateLayout))
		a.prompt.Printf("  - Valor Total da Venda: R$ %s\n\n", a.money(s.Value))
	}
	return nil
}

func (a *App) productPurchases(ctx context.Context, p report.Period) error {
	purchases, err := a.reports.ProductPurchases(ctx, p)
	if err != nil {
		return err
	}
	if len(purchases) == 0 {
		a.prompt.Println("Nenhuma compra de produtos encontrada no período especificado.")
		return nil
	}

	a.prompt.Printf("\nCompras de Produtos no período de %s:\n\n", p)
	for _, pp := range purchases {
		expires := "N/A"
		if pp.ExpiresOn != nil {
			expires = pp.ExpiresOn.Format(schema.DateLayout)
		}
		a.prompt.Printf("Produto: %s\n", pp.Product)
		a.prompt.Printf("   - Data de Fabricação: %s\n", pp.ManufacturedOn.Format(schema.DateLayout))
		a.prompt.Printf("   - Data de Validade: %s\n", expires)
		a.prompt.Printf("   - Quantidade Comprada: %d\n", pp.Quantity)
		a.prompt.Printf("   - Preço do Produto: %s\n", a.money(pp.Price))
		a.prompt.Printf("   - Valor Total Compra: R$ %s\n", a.money(pp.Total))
		a.prompt.Printf("   - Fornecedor: %s\n", pp.SupplierEmail)
		a.prompt.Printf("   - Frete: %s\n", a.money(pp.Freight))
		a.prompt.Printf("   - Data da Compra: %s\n\n", pp.PurchasedOn.Format(schema.DateLayout))
	}
	return nil
}
