package fixtures

import (
	"fmt"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/hlubek/gestao-varejo/schema"
)

// MaxFakeRows is the largest row count whose index still fits the CPF and
// CNPJ layouts.
const MaxFakeRows = 9999

var (
	fakeFrom = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	fakeTo   = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
)

// Fake builds a document with n rows per table and two product units per
// purchase and catalog product on average. The same seed yields the same
// document; seed 0 picks a random one.
func Fake(seed uint64, n int) (Document, error) {
	if n < 1 || n > MaxFakeRows {
		return nil, fmt.Errorf("row count %d out of range 1..%d", n, MaxFakeRows)
	}
	f := gofakeit.New(seed)

	ref := func() string {
		return "#" + strconv.Itoa(f.Number(1, n))
	}
	date := func() time.Time {
		return f.DateRange(fakeFrom, fakeTo).UTC()
	}
	day := func(t time.Time) string {
		return t.Format(schema.DateLayout)
	}
	money := func(min, max float64) string {
		return strconv.FormatFloat(f.Price(min, max), 'f', 2, 64)
	}
	// the row index fills the middle digits, so unique columns stay unique
	cpf := func(i int, suffix string) string {
		return fmt.Sprintf("%s%d.%03d-%s", f.Numerify("###.##"), i/1000, i%1000, suffix)
	}
	cnpj := func(i int) string {
		return fmt.Sprintf("%s%d.%03d/0001-%s", f.Numerify("##.##"), i/1000, i%1000, f.Numerify("##"))
	}

	doc := Document{}
	for i := 1; i <= n; i++ {
		doc["categoria"] = append(doc["categoria"], Row{
			"nome": f.ProductCategory(),
		})
		doc["endereco"] = append(doc["endereco"], Row{
			"cidade": f.City(),
			"bairro": f.StreetName(),
			"rua":    f.Street(),
			"numero": f.StreetNumber(),
			"estado": f.StateAbr(),
		})
	}
	for i := 1; i <= n; i++ {
		doc["catalogo_produto"] = append(doc["catalogo_produto"], Row{
			"nome":         f.ProductName(),
			"descricao":    f.Sentence(6),
			"preco":        money(1, 200),
			"categoria_id": ref(),
		})
		doc["cliente"] = append(doc["cliente"], Row{
			"cpf":         cpf(i, "00"),
			"nome":        f.FirstName(),
			"ultimo_nome": f.LastName(),
			"telefone":    f.Phone(),
			"email":       f.Email(),
			"endereco_id": ref(),
		})
		doc["funcionario"] = append(doc["funcionario"], Row{
			"cpf":         cpf(i, "99"),
			"nome":        f.FirstName(),
			"ultimo_nome": f.LastName(),
			"salario":     money(1500, 9000),
			"email":       f.Email(),
			"endereco_id": ref(),
		})
		doc["fornecedor"] = append(doc["fornecedor"], Row{
			"cnpj":        cnpj(i),
			"email":       f.Email(),
			"telefone":    f.Phone(),
			"endereco_id": ref(),
		})
	}
	for i := 1; i <= n; i++ {
		doc["compra"] = append(doc["compra"], Row{
			"nfe":           f.Numerify("####################"),
			"data":          day(date()),
			"fornecedor_id": ref(),
		})
		doc["venda"] = append(doc["venda"], Row{
			"nfe":            f.Numerify("####################"),
			"data":           day(date()),
			"valor":          money(10, 2000),
			"cliente_id":     ref(),
			"funcionario_id": ref(),
		})
	}
	for i := 1; i <= 2*n; i++ {
		made := date()
		row := Row{
			"data_fabricacao":     day(made),
			"data_validade":       day(made.AddDate(0, f.Number(1, 24), 0)),
			"valor_compra":        money(1, 250),
			"catalogo_produto_id": ref(),
			"compra_id":           ref(),
		}
		if f.Bool() {
			row["venda_id"] = ref()
		}
		doc["produto"] = append(doc["produto"], row)
	}
	return doc, nil
}
