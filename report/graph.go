package report

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"go.uber.org/zap"

	"github.com/hlubek/gestao-varejo/graph"
)

const (
	topSellersCypher = `MATCH (e:endereco)<-[:TRABALHA_EM]-(f:funcionario)<-[:ATENDIDO_POR]-(v:venda)
WHERE v.data >= $from AND v.data < $to
WITH f, e, sum(v.valor) AS total
RETURN f.nome AS nome, f.ultimo_nome AS ultimo_nome, total, e.estado AS estado
ORDER BY total DESC
LIMIT $limit`

	topClientsCypher = `MATCH (c:cliente)-[:FEZ]->(v:venda)
WHERE v.data >= $from AND v.data < $to
WITH c, sum(v.valor) AS total
MATCH (c)-[:RESIDE_EM]->(e:endereco)
RETURN c.nome AS nome, c.ultimo_nome AS ultimo_nome, total, e.cidade AS cidade
ORDER BY total DESC
LIMIT $limit`

	salesByRegionCypher = `MATCH (c:cliente)-[:FEZ]->(v:venda)-[:ATENDIDO_POR]->(f:funcionario)
MATCH (c)-[:RESIDE_EM]->(e:endereco)
WHERE v.data >= $from AND v.data < $to
RETURN e.cidade AS cidade, f.nome AS funcionario_nome, f.ultimo_nome AS funcionario_ultimo_nome,
       c.nome AS cliente_nome, c.ultimo_nome AS cliente_ultimo_nome, v.data AS data, v.valor AS valor
ORDER BY cidade, data DESC`

	productPurchasesCypher = `MATCH (p:produto)-[:CATEGORIZADO_COM]->(cp:catalogo_produto),
      (c:compra)-[:CONTAINS]->(p),
      (fo:fornecedor)-[:FORNECE]->(c)
WHERE c.data >= $from AND c.data < $to
WITH cp, p.data_fabricacao AS data_fabricacao, p.data_validade AS data_validade, c, fo,
     count(p) AS quantidade, sum(p.valor_compra) AS total
RETURN cp.nome AS produto, data_fabricacao, data_validade, c.data AS data_compra,
       fo.email AS email, cp.preco AS preco, quantidade, total
ORDER BY data_validade DESC, produto`
)

// Graph runs the reports as Cypher aggregations.
type Graph struct {
	client graph.Client
	logger *zap.Logger
}

var _ Service = (*Graph)(nil)

func NewGraph(client graph.Client, logger *zap.Logger) *Graph {
	return &Graph{client: client, logger: logger.Named("report")}
}

func periodParams(p Period) map[string]any {
	return map[string]any{
		"from":  dbtype.Date(p.From),
		"to":    dbtype.Date(p.End()),
		"limit": int64(TopN),
	}
}

func (g *Graph) TopSellers(ctx context.Context, p Period) ([]SellerTotal, error) {
	records, err := g.run(ctx, topSellersCypher, p)
	if err != nil {
		return nil, err
	}

	result := make([]SellerTotal, 0, len(records))
	for _, rec := range records {
		var (
			first, last string
			r           SellerTotal
		)
		if err := getAll(rec, "nome", &first, "ultimo_nome", &last, "total", &r.Total, "estado", &r.State); err != nil {
			return nil, err
		}
		r.Employee = fullName(first, last)
		result = append(result, r)
	}
	return result, nil
}

func (g *Graph) TopClients(ctx context.Context, p Period) ([]ClientTotal, error) {
	records, err := g.run(ctx, topClientsCypher, p)
	if err != nil {
		return nil, err
	}

	result := make([]ClientTotal, 0, len(records))
	for _, rec := range records {
		var (
			first, last string
			r           ClientTotal
		)
		if err := getAll(rec, "nome", &first, "ultimo_nome", &last, "total", &r.Total, "cidade", &r.City); err != nil {
			return nil, err
		}
		r.Client = fullName(first, last)
		result = append(result, r)
	}
	return result, nil
}

func (g *Graph) SalesByRegion(ctx context.Context, p Period) ([]RegionSale, error) {
	records, err := g.run(ctx, salesByRegionCypher, p)
	if err != nil {
		return nil, err
	}

	result := make([]RegionSale, 0, len(records))
	for _, rec := range records {
		var (
			employeeFirst, employeeLast string
			clientFirst, clientLast     string
			r                           RegionSale
		)
		if err := getAll(rec,
			"cidade", &r.City,
			"funcionario_nome", &employeeFirst,
			"funcionario_ultimo_nome", &employeeLast,
			"cliente_nome", &clientFirst,
			"cliente_ultimo_nome", &clientLast,
			"data", &r.Date,
			"valor", &r.Value,
		); err != nil {
			return nil, err
		}
		r.Employee = fullName(employeeFirst, employeeLast)
		r.Client = fullName(clientFirst, clientLast)
		result = append(result, r)
	}
	return result, nil
}

func (g *Graph) ProductPurchases(ctx context.Context, p Period) ([]ProductPurchase, error) {
	records, err := g.run(ctx, productPurchasesCypher, p)
	if err != nil {
		return nil, err
	}

	result := make([]ProductPurchase, 0, len(records))
	for _, rec := range records {
		var r ProductPurchase
		if err := getAll(rec,
			"produto", &r.Product,
			"data_fabricacao", &r.ManufacturedOn,
			"data_validade", &r.ExpiresOn,
			"data_compra", &r.PurchasedOn,
			"email", &r.SupplierEmail,
			"preco", &r.Price,
			"quantidade", &r.Quantity,
			"total", &r.Total,
		); err != nil {
			return nil, err
		}
		r.Freight = freight(r.Total, r.Price, r.Quantity)
		result = append(result, r)
	}
	return result, nil
}

func (g *Graph) run(ctx context.Context, cypher string, p Period) ([]graph.Record, error) {
	g.logger.Debug("executing report", zap.Stringer("period", p))

	records, err := g.client.Read(ctx, cypher, periodParams(p))
	if err != nil {
		return nil, fmt.Errorf("running report: %w", err)
	}
	return records, nil
}

// getAll reads pairs of key and destination pointer from rec.
func getAll(rec graph.Record, pairs ...any) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := rec.Get(pairs[i].(string), pairs[i+1]); err != nil {
			return err
		}
	}
	return nil
}
