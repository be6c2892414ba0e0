package main

import (
	"flag"
	"fmt"
	"go/types"
	"os"
	"reflect"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/go/packages"
)

const schemaPath = "github.com/hlubek/gestao-varejo/schema"

type field struct {
	name    string
	column  string
	label   string
	ref     string
	edge    string
	inbound bool
}

func main() {
	// Special env variable set by "go generate"
	goFile := os.Getenv("GOFILE")

	table := flag.String("table", "", "table (and graph label) the type is stored in")
	label := flag.String("label", "", "display name of the type")
	flag.Parse()

	if flag.NArg() != 1 {
		failErr(fmt.Errorf("expected exactly one argument: [source type]"))
	}
	if *table == "" {
		failErr(fmt.Errorf("-table is required"))
	}

	sourceType := flag.Arg(0)
	if *label == "" {
		*label = sourceType
	}

	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedFiles | packages.NeedTypes}
	pkgs, err := packages.Load(cfg, fmt.Sprintf("file=%s", goFile))
	if err != nil {
		failErr(fmt.Errorf("loading packages for inspection: %v", err))
	}
	if packages.PrintErrors(pkgs) > 0 {
		os.Exit(1)
	}

	pkg := pkgs[0]

	obj := pkg.Types.Scope().Lookup(sourceType)
	if obj == nil {
		failErr(fmt.Errorf("%s not found in lookup", sourceType))
	}

	if _, ok := obj.(*types.TypeName); !ok {
		failErr(fmt.Errorf("%v is not a named type", obj))
	}
	structType, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		failErr(fmt.Errorf("type %v is a %T, not a struct", obj, obj.Type().Underlying()))
	}

	fields, err := collectFields(structType)
	if err != nil {
		failErr(fmt.Errorf("inspecting %s: %v", sourceType, err))
	}

	f := generate(pkg.PkgPath, pkg.Name, sourceType, *table, *label, fields)

	target := snakeCase(sourceType) + "_descriptor.go"
	if err := f.Save(target); err != nil {
		failErr(fmt.Errorf("writing %s: %v", target, err))
	}
}

func collectFields(structType *types.Struct) ([]field, error) {
	var (
		fields []field
		hasKey bool
	)
	for i := 0; i < structType.NumFields(); i++ {
		v := structType.Field(i)
		if !v.Exported() {
			continue
		}
		tag := reflect.StructTag(structType.Tag(i))
		column := tag.Get("col")
		if column == "-" {
			continue
		}
		if column == "" {
			return nil, fmt.Errorf("field %s has no col tag", v.Name())
		}

		fl := field{
			name:   v.Name(),
			column: column,
			label:  tag.Get("label"),
			ref:    tag.Get("ref"),
		}
		if fl.label == "" {
			fl.label = v.Name()
		}
		if column == "id" {
			if basic, ok := v.Type().(*types.Basic); !ok || basic.Kind() != types.Int64 {
				return nil, fmt.Errorf("key field %s must be int64", v.Name())
			}
			hasKey = true
		}

		edge := tag.Get("edge")
		if (fl.ref == "") != (edge == "") {
			return nil, fmt.Errorf("field %s needs both ref and edge tags", v.Name())
		}
		if edge != "" {
			switch {
			case strings.HasPrefix(edge, "->"):
				fl.edge = strings.TrimPrefix(edge, "->")
			case strings.HasPrefix(edge, "<-"):
				fl.edge = strings.TrimPrefix(edge, "<-")
				fl.inbound = true
			default:
				return nil, fmt.Errorf("edge tag of field %s must start with -> or <-", v.Name())
			}
		}

		fields = append(fields, fl)
	}
	if !hasKey {
		return nil, fmt.Errorf("no field with col:\"id\"")
	}
	return fields, nil
}

func generate(pkgPath, pkgName, typeName, table, label string, fields []field) *jen.File {
	f := jen.NewFilePathName(pkgPath, pkgName)
	f.HeaderComment("Code generated by generator, DO NOT EDIT.")

	f.Commentf("%sDescriptor maps %s to the %s table.", typeName, typeName, table)
	f.Var().Id(typeName+"Descriptor").Op("=").Op("&").Qual(schemaPath, "Descriptor").Types(jen.Id(typeName)).Values(jen.Dict{
		jen.Id("Table"): jen.Lit(table),
		jen.Id("Label"): jen.Lit(label),
		jen.Id("Fields"): jen.Index().Qual(schemaPath, "Field").Types(jen.Id(typeName)).ValuesFunc(func(g *jen.Group) {
			for _, fl := range fields {
				g.Values(fieldDict(typeName, fl))
			}
		}),
	})

	return f
}

func fieldDict(typeName string, fl field) jen.Dict {
	d := jen.Dict{
		jen.Id("Name"):   jen.Lit(fl.name),
		jen.Id("Column"): jen.Lit(fl.column),
		jen.Id("Label"):  jen.Lit(fl.label),
		jen.Id("Ptr"): jen.Func().Params(jen.Id("e").Op("*").Id(typeName)).Id("any").Block(
			jen.Return(jen.Op("&").Id("e").Dot(fl.name)),
		),
	}
	if fl.column == "id" {
		d[jen.Id("Key")] = jen.True()
	}
	if fl.ref != "" {
		edge := jen.Dict{jen.Id("Type"): jen.Lit(fl.edge)}
		if fl.inbound {
			edge[jen.Id("Inbound")] = jen.True()
		}
		d[jen.Id("Ref")] = jen.Lit(fl.ref)
		d[jen.Id("Edge")] = jen.Qual(schemaPath, "Edge").Values(edge)
	}
	return d
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func failErr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
