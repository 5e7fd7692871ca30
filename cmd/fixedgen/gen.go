package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/qiuchengxuan/fixed-point/literal"
)

const modulePath = "github.com/qiuchengxuan/fixed-point"

// definition is one NAME=LITERAL[:PRECISION] argument.
type definition struct {
	name      string
	lit       literal.Literal
	precision uint8
}

// kinds maps a literal storage suffix to the Go type it selects and the
// range the scaled constant must fit.
var kinds = map[string]struct {
	goType   string
	min, max int64
}{
	"i8":  {"int8", math.MinInt8, math.MaxInt8},
	"u8":  {"uint8", 0, math.MaxUint8},
	"i16": {"int16", math.MinInt16, math.MaxInt16},
	"u16": {"uint16", 0, math.MaxUint16},
	"i32": {"int32", math.MinInt32, math.MaxInt32},
	"u32": {"uint32", 0, math.MaxUint32},
}

func parseDefinitions(args []string) ([]definition, error) {
	defs := make([]definition, 0, len(args))
	for _, arg := range args {
		def, err := parseDefinition(arg)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func parseDefinition(arg string) (definition, error) {
	name, token, found := strings.Cut(arg, "=")
	if !found || !isIdentifier(name) {
		return definition{}, fmt.Errorf("definition must be NAME=LITERAL[:PRECISION], got %q", arg)
	}

	token, precision, explicit := strings.Cut(token, ":")
	lit, err := literal.Parse(token)
	if err != nil {
		return definition{}, fmt.Errorf("definition %q: %w", arg, err)
	}

	def := definition{name: name, lit: lit, precision: lit.Inferred()}
	if explicit {
		n, err := strconv.ParseUint(precision, 10, 8)
		if err != nil {
			return definition{}, fmt.Errorf("definition %q: bad precision %q", arg, precision)
		}
		def.precision = uint8(n)
	}
	if def.precision > 9 {
		return definition{}, fmt.Errorf("definition %q: precision %d out of range, fixedpoint provides D0 through D9", arg, def.precision)
	}
	return def, nil
}

func isIdentifier(s string) bool {
	for i, c := range s {
		switch {
		case c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return len(s) > 0
}

// generate builds the output file: one package-level var per definition
// holding the pre-scaled constant.
func generate(pkg string, defs []definition) (*jen.File, error) {
	file := jen.NewFile(pkg)
	file.HeaderComment("Code generated by fixedgen. DO NOT EDIT.")
	file.ImportName(modulePath, "fixedpoint")

	for _, def := range defs {
		suffix := def.lit.Suffix
		if suffix == "" {
			suffix = literal.DefaultSuffix
		}
		kind := kinds[suffix]

		scaled, err := def.lit.Scaled(def.precision)
		if err != nil {
			return nil, fmt.Errorf("definition %s: %w", def.name, err)
		}
		if scaled < kind.min || scaled > kind.max {
			return nil, fmt.Errorf("definition %s: %d does not fit in %s", def.name, scaled, kind.goType)
		}

		// A two-element Index renders as a slice expression; the type
		// arguments must go through a single List. The constant is
		// emitted untyped so it assigns to any storage kind; the range
		// check above guarantees it fits.
		file.Var().Id(def.name).Op("=").Qual(modulePath, "Value").Index(jen.List(
			jen.Id(kind.goType),
			jen.Qual(modulePath, fmt.Sprintf("D%d", def.precision)),
		)).Values(jen.Id("Stored").Op(":").Id(strconv.FormatInt(scaled, 10)))
	}

	return file, nil
}
