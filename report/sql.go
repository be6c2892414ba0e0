package report

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/hlubek/gestao-varejo/repository"
)

// SQL runs the reports as aggregate queries on the relational schema.
type SQL struct {
	builder squirrel.StatementBuilderType
	logger  *zap.Logger
}

var _ Service = (*SQL)(nil)

func NewSQL(runner squirrel.BaseRunner, dialect repository.Dialect, logger *zap.Logger) *SQL {
	return &SQL{
		builder: dialect.Builder(runner),
		logger:  logger.Named("report"),
	}
}

func inPeriod(column string, p Period) squirrel.And {
	return squirrel.And{
		squirrel.GtOrEq{column: p.From},
		squirrel.Lt{column: p.End()},
	}
}

func (s *SQL) TopSellers(ctx context.Context, p Period) ([]SellerTotal, error) {
	q := s.builder.
		Select("f.nome", "f.ultimo_nome", "SUM(v.valor) AS total", "e.estado").
		From("venda v").
		Join("funcionario f ON f.id = v.funcionario_id").
		Join("endereco e ON e.id = f.endereco_id").
		Where(inPeriod("v.data", p)).
		GroupBy("f.id", "f.nome", "f.ultimo_nome", "e.estado").
		OrderBy("total DESC").
		Limit(TopN)

	var result []SellerTotal
	err := s.query(ctx, q, func(rows *sql.Rows) error {
		var (
			first, last string
			r           SellerTotal
		)
		if err := rows.Scan(&first, &last, &r.Total, &r.State); err != nil {
			return err
		}
		r.Employee = fullName(first, last)
		result = append(result, r)
		return nil
	})
	return result, err
}

func (s *SQL) TopClients(ctx context.Context, p Period) ([]ClientTotal, error) {
	q := s.builder.
		Select("c.nome", "c.ultimo_nome", "SUM(v.valor) AS total", "e.cidade").
		From("venda v").
		Join("cliente c ON c.id = v.cliente_id").
		Join("endereco e ON e.id = c.endereco_id").
		Where(inPeriod("v.data", p)).
		GroupBy("c.id", "c.nome", "c.ultimo_nome", "e.cidade").
		OrderBy("total DESC").
		Limit(TopN)

	var result []ClientTotal
	err := s.query(ctx, q, func(rows *sql.Rows) error {
		var (
			first, last string
			r           ClientTotal
		)
		if err := rows.Scan(&first, &last, &r.Total, &r.City); err != nil {
			return err
		}
		r.Client = fullName(first, last)
		result = append(result, r)
		return nil
	})
	return result, err
}

func (s *SQL) SalesByRegion(ctx context.Context, p Period) ([]RegionSale, error) {
	q := s.builder.
		Select("e.cidade", "f.nome", "f.ultimo_nome", "c.nome", "c.ultimo_nome", "v.data", "v.valor").
		From("venda v").
		Join("cliente c ON c.id = v.cliente_id").
		Join("endereco e ON e.id = c.endereco_id").
		Join("funcionario f ON f.id = v.funcionario_id").
		Where(inPeriod("v.data", p)).
		OrderBy("e.cidade", "v.data DESC")

	var result []RegionSale
	err := s.query(ctx, q, func(rows *sql.Rows) error {
		var (
			employeeFirst, employeeLast string
			clientFirst, clientLast     string
			r                           RegionSale
		)
		if err := rows.Scan(&r.City, &employeeFirst, &employeeLast, &clientFirst, &clientLast, &r.Date, &r.Value); err != nil {
			return err
		}
		r.Employee = fullName(employeeFirst, employeeLast)
		r.Client = fullName(clientFirst, clientLast)
		result = append(result, r)
		return nil
	})
	return result, err
}

func (s *SQL) ProductPurchases(ctx context.Context, p Period) ([]ProductPurchase, error) {
	q := s.builder.
		Select("cp.nome", "p.data_fabricacao", "p.data_validade", "c.data", "fo.email", "cp.preco",
			"COUNT(p.id) AS quantidade", "SUM(p.valor_compra) AS total").
		From("produto p").
		Join("catalogo_produto cp ON cp.id = p.catalogo_produto_id").
		Join("compra c ON c.id = p.compra_id").
		Join("fornecedor fo ON fo.id = c.fornecedor_id").
		Where(inPeriod("c.data", p)).
		GroupBy("cp.id", "cp.nome", "p.data_fabricacao", "p.data_validade", "c.id", "c.data", "fo.email", "cp.preco").
		OrderBy("p.data_validade DESC", "cp.nome")

	var result []ProductPurchase
	err := s.query(ctx, q, func(rows *sql.Rows) error {
		var (
			r       ProductPurchase
			expires sql.NullTime
		)
		if err := rows.Scan(&r.Product, &r.ManufacturedOn, &expires, &r.PurchasedOn, &r.SupplierEmail,
			&r.Price, &r.Quantity, &r.Total); err != nil {
			return err
		}
		if expires.Valid {
			r.ExpiresOn = &expires.Time
		}
		r.Freight = freight(r.Total, r.Price, r.Quantity)
		result = append(result, r)
		return nil
	})
	return result, err
}

func (s *SQL) query(ctx context.Context, q squirrel.SelectBuilder, scan func(rows *sql.Rows) error) error {
	if ce := s.logger.Check(zap.DebugLevel, "executing report"); ce != nil {
		query, args, _ := q.ToSql()
		ce.Write(zap.String("sql", query), zap.Any("args", args))
	}

	start := time.Now()
	rows, err := q.QueryContext(ctx)
	if err != nil {
		return fmt.Errorf("running report: %w", err)
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("scanning report row: %w", err)
		}
		n++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating report rows: %w", err)
	}

	s.logger.Debug("report done", zap.Int("rows", n), zap.Duration("took", time.Since(start)))
	return nil
}
