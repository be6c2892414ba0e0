//go:build integration

package graph_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcneo4j "github.com/testcontainers/testcontainers-go/modules/neo4j"
	"go.uber.org/zap"

	"github.com/hlubek/gestao-varejo/domain"
	"github.com/hlubek/gestao-varejo/fixtures"
	"github.com/hlubek/gestao-varejo/graph"
	"github.com/hlubek/gestao-varejo/report"
	"github.com/hlubek/gestao-varejo/store"
)

const neo4jPassword = "varejo-test"

var driver *graph.Driver

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := tcneo4j.Run(ctx, "neo4j:5", tcneo4j.WithAdminPassword(neo4jPassword))
	if err != nil {
		fmt.Fprintf(os.Stderr, "starting neo4j container: %v\n", err)
		os.Exit(1)
	}

	code := func() int {
		uri, err := container.BoltUrl(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "reading bolt url: %v\n", err)
			return 1
		}
		d, err := graph.Open(ctx, graph.Options{URI: uri, Username: "neo4j", Password: neo4jPassword}, zap.NewNop())
		if err != nil {
			fmt.Fprintf(os.Stderr, "connecting: %v\n", err)
			return 1
		}
		defer d.Close(ctx)

		if err := graph.EnsureConstraints(ctx, d, store.Labels...); err != nil {
			fmt.Fprintf(os.Stderr, "creating constraints: %v\n", err)
			return 1
		}

		driver = d
		return m.Run()
	}()

	if err := container.Terminate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "terminating neo4j container: %v\n", err)
	}
	os.Exit(code)
}

func reset(t *testing.T) {
	t.Helper()
	_, err := driver.Write(context.Background(), "MATCH (n) DETACH DELETE n", nil)
	require.NoError(t, err)
}

// edges counts the relationships of type rel attached to the node.
func edges(t *testing.T, label string, id int64, rel string) int64 {
	t.Helper()
	records, err := driver.Read(context.Background(),
		fmt.Sprintf("MATCH (:%s {id: $id})-[r:%s]-() RETURN count(r) AS n", label, rel),
		map[string]any{"id": id})
	require.NoError(t, err)
	require.Len(t, records, 1)

	var n int64
	require.NoError(t, records[0].Get("n", &n))
	return n
}

func TestGraph_CRUD(t *testing.T) {
	reset(t)
	ctx := context.Background()
	categories := graph.New(driver, domain.CategoryDescriptor, zap.NewNop())

	bebidas := &domain.Category{Name: "Bebidas"}
	id, err := categories.Insert(ctx, bebidas)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, id, bebidas.ID)

	limpeza := &domain.Category{Name: "Limpeza"}
	id, err = categories.Insert(ctx, limpeza)
	require.NoError(t, err)
	assert.Equal(t, int64(2), id, "next id follows the highest one")

	all, err := categories.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{{ID: 1, Name: "Bebidas"}, {ID: 2, Name: "Limpeza"}}, all)

	after := *bebidas
	after.Name = "Bebidas e Sucos"
	require.NoError(t, categories.Update(ctx, bebidas.ID, domain.CategoryDescriptor.Diff(bebidas, &after)))

	got, err := categories.FindByID(ctx, bebidas.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bebidas e Sucos", got.Name)

	require.NoError(t, categories.Delete(ctx, limpeza.ID))
	assert.ErrorIs(t, categories.Delete(ctx, limpeza.ID), domain.ErrNotFound)

	_, err = categories.FindByID(ctx, limpeza.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = categories.Update(ctx, 42, domain.CategoryDescriptor.Diff(bebidas, &after))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	id, err = categories.Insert(ctx, &domain.Category{Name: "Padaria"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), id, "next id is one past the highest remaining id")
}

func TestGraph_References(t *testing.T) {
	reset(t)
	ctx := context.Background()
	logger := zap.NewNop()
	addresses := graph.New(driver, domain.AddressDescriptor, logger)
	clients := graph.New(driver, domain.ClientDescriptor, logger)
	suppliers := graph.New(driver, domain.SupplierDescriptor, logger)

	blumenau := &domain.Address{City: "Blumenau", Street: "Rua XV de Novembro", State: "SC"}
	_, err := addresses.Insert(ctx, blumenau)
	require.NoError(t, err)
	curitiba := &domain.Address{City: "Curitiba", Street: "Rua das Flores", State: "PR"}
	_, err = addresses.Insert(ctx, curitiba)
	require.NoError(t, err)

	t.Run("insert with a missing reference", func(t *testing.T) {
		_, err := clients.Insert(ctx, &domain.Client{CPF: "111.111.111-11", FirstName: "Ana", AddressID: 99})
		assert.ErrorIs(t, err, domain.ErrInvalidReference)

		all, err := clients.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	ana := &domain.Client{CPF: "111.111.111-11", FirstName: "Ana", LastName: "Souza", AddressID: blumenau.ID}
	_, err = clients.Insert(ctx, ana)
	require.NoError(t, err)

	got, err := clients.FindByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, *ana, *got)

	t.Run("update with a missing reference", func(t *testing.T) {
		moved := *ana
		moved.AddressID = 99
		err := clients.Update(ctx, ana.ID, domain.ClientDescriptor.Diff(ana, &moved))
		assert.ErrorIs(t, err, domain.ErrInvalidReference)

		got, err := clients.FindByID(ctx, ana.ID)
		require.NoError(t, err)
		assert.Equal(t, blumenau.ID, got.AddressID)
	})

	t.Run("relink together with a property", func(t *testing.T) {
		moved := *ana
		moved.AddressID = curitiba.ID
		moved.Phone = "47 3333-0000"
		require.NoError(t, clients.Update(ctx, ana.ID, domain.ClientDescriptor.Diff(ana, &moved)))

		got, err := clients.FindByID(ctx, ana.ID)
		require.NoError(t, err)
		assert.Equal(t, curitiba.ID, got.AddressID)
		assert.Equal(t, "47 3333-0000", got.Phone)
		assert.Equal(t, int64(1), edges(t, "cliente", ana.ID, "RESIDE_EM"))
	})

	t.Run("nullable reference", func(t *testing.T) {
		supplier := &domain.Supplier{CNPJ: "12.345.678/0001-90", Email: "vendas@torrefacao.com.br"}
		_, err := suppliers.Insert(ctx, supplier)
		require.NoError(t, err)

		got, err := suppliers.FindByID(ctx, supplier.ID)
		require.NoError(t, err)
		assert.Nil(t, got.AddressID)

		linked := *supplier
		linked.AddressID = &blumenau.ID
		require.NoError(t, suppliers.Update(ctx, supplier.ID, domain.SupplierDescriptor.Diff(supplier, &linked)))
		got, err = suppliers.FindByID(ctx, supplier.ID)
		require.NoError(t, err)
		require.NotNil(t, got.AddressID)
		assert.Equal(t, blumenau.ID, *got.AddressID)

		require.NoError(t, suppliers.Update(ctx, supplier.ID, domain.SupplierDescriptor.Diff(&linked, supplier)))
		got, err = suppliers.FindByID(ctx, supplier.ID)
		require.NoError(t, err)
		assert.Nil(t, got.AddressID)
		assert.Equal(t, int64(0), edges(t, "fornecedor", supplier.ID, "LOCALIZADO_EM"))
	})

	t.Run("delete of a referenced node", func(t *testing.T) {
		err := addresses.Delete(ctx, curitiba.ID)
		assert.ErrorIs(t, err, domain.ErrStillReferenced)

		_, err = addresses.FindByID(ctx, curitiba.ID)
		require.NoError(t, err, "refused delete keeps the node")

		require.NoError(t, clients.Delete(ctx, ana.ID))
		require.NoError(t, addresses.Delete(ctx, curitiba.ID))
	})
}

func TestGraph_Dates(t *testing.T) {
	reset(t)
	ctx := context.Background()
	logger := zap.NewNop()

	address := &domain.Address{City: "Joinville", Street: "Rua do Príncipe", State: "SC"}
	_, err := graph.New(driver, domain.AddressDescriptor, logger).Insert(ctx, address)
	require.NoError(t, err)
	supplier := &domain.Supplier{CNPJ: "98.765.432/0001-10", Email: "compras@laticinios.com.br", AddressID: &address.ID}
	_, err = graph.New(driver, domain.SupplierDescriptor, logger).Insert(ctx, supplier)
	require.NoError(t, err)

	purchases := graph.New(driver, domain.PurchaseDescriptor, logger)
	date := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	purchase := &domain.Purchase{NFE: "0042", Date: date, SupplierID: supplier.ID}
	_, err = purchases.Insert(ctx, purchase)
	require.NoError(t, err)

	got, err := purchases.FindByID(ctx, purchase.ID)
	require.NoError(t, err)
	assert.True(t, got.Date.Equal(date), "date %s", got.Date)
	assert.Equal(t, supplier.ID, got.SupplierID)
	assert.Equal(t, int64(1), edges(t, "compra", purchase.ID, "FORNECE"))
}

func seedGraph(t *testing.T) {
	t.Helper()
	reset(t)

	b := store.NewGraph(driver, zap.NewNop())
	v := domain.NewValidator()
	loader := fixtures.NewLoader(zap.NewNop(),
		fixtures.NewTable(domain.CategoryDescriptor, fixtures.Inserter[domain.Category](store.Bind(b, domain.CategoryDescriptor)), v),
		fixtures.NewTable(domain.CatalogProductDescriptor, fixtures.Inserter[domain.CatalogProduct](store.Bind(b, domain.CatalogProductDescriptor)), v),
		fixtures.NewTable(domain.AddressDescriptor, fixtures.Inserter[domain.Address](store.Bind(b, domain.AddressDescriptor)), v),
		fixtures.NewTable(domain.ClientDescriptor, fixtures.Inserter[domain.Client](store.Bind(b, domain.ClientDescriptor)), v),
		fixtures.NewTable(domain.EmployeeDescriptor, fixtures.Inserter[domain.Employee](store.Bind(b, domain.EmployeeDescriptor)), v),
		fixtures.NewTable(domain.SupplierDescriptor, fixtures.Inserter[domain.Supplier](store.Bind(b, domain.SupplierDescriptor)), v),
		fixtures.NewTable(domain.PurchaseDescriptor, fixtures.Inserter[domain.Purchase](store.Bind(b, domain.PurchaseDescriptor)), v),
		fixtures.NewTable(domain.SaleDescriptor, fixtures.Inserter[domain.Sale](store.Bind(b, domain.SaleDescriptor)), v),
		fixtures.NewTable(domain.ProductDescriptor, fixtures.Inserter[domain.Product](store.Bind(b, domain.ProductDescriptor)), v),
	)

	f, err := os.Open("../fixtures/testdata/march.yaml")
	require.NoError(t, err)
	defer f.Close()
	doc, err := fixtures.Parse(f)
	require.NoError(t, err)
	_, err = loader.Load(context.Background(), doc)
	require.NoError(t, err)
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestGraph_Reports(t *testing.T) {
	seedGraph(t)
	ctx := context.Background()
	reports := report.NewGraph(driver, zap.NewNop())
	p, err := report.ParsePeriod("2024-03-01", "2024-03-31")
	require.NoError(t, err)

	t.Run("top sellers include both ends of the period", func(t *testing.T) {
		sellers, err := reports.TopSellers(ctx, p)
		require.NoError(t, err)
		require.Len(t, sellers, 2)

		assert.Equal(t, "Carla Lima", sellers[0].Employee)
		assert.True(t, sellers[0].Total.Equal(decimal.RequireFromString("150.75")), "total %s", sellers[0].Total)
		assert.Equal(t, "SC", sellers[0].State)
		assert.Equal(t, "Diego", sellers[1].Employee)
	})

	t.Run("top clients", func(t *testing.T) {
		clients, err := reports.TopClients(ctx, p)
		require.NoError(t, err)
		require.Len(t, clients, 2)

		assert.Equal(t, "Ana Souza", clients[0].Client)
		assert.True(t, clients[0].Total.Equal(decimal.RequireFromString("150.75")), "total %s", clients[0].Total)
		assert.Equal(t, "Blumenau", clients[0].City)
	})

	t.Run("sales by region", func(t *testing.T) {
		sales, err := reports.SalesByRegion(ctx, p)
		require.NoError(t, err)
		require.Len(t, sales, 3)

		assert.Equal(t, "Blumenau", sales[0].City)
		assert.True(t, sales[0].Date.Equal(day("2024-03-31")), "date %s", sales[0].Date)
		assert.Equal(t, "Carla Lima", sales[0].Employee)
		assert.Equal(t, "Ana Souza", sales[0].Client)
		assert.True(t, sales[1].Date.Equal(day("2024-03-01")), "date %s", sales[1].Date)
		assert.Equal(t, "Curitiba", sales[2].City)
		assert.True(t, sales[2].Value.Equal(decimal.RequireFromString("30")))
	})

	t.Run("product purchases group units", func(t *testing.T) {
		purchases, err := reports.ProductPurchases(ctx, p)
		require.NoError(t, err)
		require.Len(t, purchases, 1)

		got := purchases[0]
		assert.Equal(t, "Café", got.Product)
		assert.True(t, got.ManufacturedOn.Equal(day("2024-02-20")))
		require.NotNil(t, got.ExpiresOn)
		assert.True(t, got.ExpiresOn.Equal(day("2024-09-20")))
		assert.True(t, got.PurchasedOn.Equal(day("2024-03-05")))
		assert.Equal(t, "vendas@torrefacao.com.br", got.SupplierEmail)
		assert.Equal(t, int64(2), got.Quantity)
		assert.True(t, got.Total.Equal(decimal.RequireFromString("24")), "total %s", got.Total)
		assert.True(t, got.Freight.Equal(decimal.RequireFromString("4")), "freight %s", got.Freight)
	})

	t.Run("delete of a sold-to client", func(t *testing.T) {
		clients := store.Bind(store.NewGraph(driver, zap.NewNop()), domain.ClientDescriptor)
		assert.ErrorIs(t, clients.Delete(ctx, 1), domain.ErrStillReferenced)
	})
}
