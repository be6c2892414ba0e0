package report

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hlubek/gestao-varejo/repository"
)

func newMockSQL(t *testing.T) (*SQL, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSQL(db, repository.Postgres, zap.NewNop()), mock
}

func march(t *testing.T) Period {
	t.Helper()
	p, err := ParsePeriod("2024-03-01", "2024-03-31")
	require.NoError(t, err)
	return p
}

func TestSQL_TopSellers(t *testing.T) {
	s, mock := newMockSQL(t)
	p := march(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT f.nome, f.ultimo_nome, SUM(v.valor) AS total, e.estado FROM venda v ` +
		`JOIN funcionario f ON f.id = v.funcionario_id JOIN endereco e ON e.id = f.endereco_id ` +
		`WHERE (v.data >= $1 AND v.data < $2) GROUP BY f.id, f.nome, f.ultimo_nome, e.estado ORDER BY total DESC LIMIT 3`)).
		WithArgs(p.From, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)).
		WillReturnRows(sqlmock.NewRows([]string{"nome", "ultimo_nome", "total", "estado"}).
			AddRow("Carla", "Lima", "1520.30", "SC").
			AddRow("João", "", "980.00", "PR"))

	sellers, err := s.TopSellers(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, sellers, 2)

	assert.Equal(t, "Carla Lima", sellers[0].Employee)
	assert.True(t, sellers[0].Total.Equal(decimal.RequireFromString("1520.30")))
	assert.Equal(t, "SC", sellers[0].State)
	assert.Equal(t, "João", sellers[1].Employee)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_TopClients(t *testing.T) {
	s, mock := newMockSQL(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT c.nome, c.ultimo_nome, SUM(v.valor) AS total, e.cidade FROM venda v ` +
		`JOIN cliente c ON c.id = v.cliente_id JOIN endereco e ON e.id = c.endereco_id ` +
		`WHERE (v.data >= $1 AND v.data < $2) GROUP BY c.id, c.nome, c.ultimo_nome, e.cidade ORDER BY total DESC LIMIT 3`)).
		WillReturnRows(sqlmock.NewRows([]string{"nome", "ultimo_nome", "total", "cidade"}).
			AddRow("Ana", "Souza", "300.00", "Blumenau"))

	clients, err := s.TopClients(context.Background(), march(t))
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Ana Souza", clients[0].Client)
	assert.Equal(t, "Blumenau", clients[0].City)
	assert.True(t, clients[0].Total.Equal(decimal.NewFromInt(300)))
}

func TestSQL_SalesByRegion(t *testing.T) {
	s, mock := newMockSQL(t)
	day := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY e.cidade, v.data DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"cidade", "f_nome", "f_ultimo_nome", "c_nome", "c_ultimo_nome", "data", "valor"}).
			AddRow("Blumenau", "Carla", "Lima", "Ana", "Souza", day, "59.90"))

	sales, err := s.SalesByRegion(context.Background(), march(t))
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "Blumenau", sales[0].City)
	assert.Equal(t, "Carla Lima", sales[0].Employee)
	assert.Equal(t, "Ana Souza", sales[0].Client)
	assert.True(t, sales[0].Date.Equal(day))
	assert.True(t, sales[0].Value.Equal(decimal.RequireFromString("59.90")))
}

func TestSQL_ProductPurchases(t *testing.T) {
	s, mock := newMockSQL(t)
	made := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)
	bought := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM produto p JOIN catalogo_produto cp ON cp.id = p.catalogo_produto_id ` +
		`JOIN compra c ON c.id = p.compra_id JOIN fornecedor fo ON fo.id = c.fornecedor_id WHERE (c.data >= $1 AND c.data < $2)`)).
		WillReturnRows(sqlmock.NewRows([]string{"nome", "data_fabricacao", "data_validade", "data", "email", "preco", "quantidade", "total"}).
			AddRow("Leite integral", made, nil, bought, "vendas@laticinio.com.br", "4.50", 12, "58.00"))

	purchases, err := s.ProductPurchases(context.Background(), march(t))
	require.NoError(t, err)
	require.Len(t, purchases, 1)

	got := purchases[0]
	assert.Equal(t, "Leite integral", got.Product)
	assert.Nil(t, got.ExpiresOn)
	assert.True(t, got.PurchasedOn.Equal(bought))
	assert.Equal(t, int64(12), got.Quantity)
	assert.True(t, got.Freight.Equal(decimal.RequireFromString("4.00")), "freight %s", got.Freight)
}

func TestSQL_QueryError(t *testing.T) {
	s, mock := newMockSQL(t)
	mock.ExpectQuery(`SELECT`).WillReturnError(sql.ErrConnDone)

	_, err := s.TopSellers(context.Background(), march(t))
	assert.ErrorIs(t, err, sql.ErrConnDone)
}
