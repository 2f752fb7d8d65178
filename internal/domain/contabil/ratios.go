package contabil

import "github.com/shopspring/decimal"

// Band classificação qualitativa de um índice financeiro.
type Band string

const (
	BandExcelente Band = "excelente"
	BandBom       Band = "bom"
	BandRegular   Band = "regular"
	BandRuim      Band = "ruim"
)

// Ratio resultado de um índice. Defined=false sinaliza denominador zero
// (índice "infinito"), nunca um erro de divisão em runtime.
type Ratio struct {
	Value   decimal.Decimal
	Defined bool
	Band    Band
}

var hundred = decimal.NewFromInt(100)

// Limiares fixos de classificação.
var (
	liquidezExcelente = decimal.NewFromInt(2)
	liquidezBom       = decimal.NewFromFloat(1.5)
	liquidezRegular   = decimal.NewFromInt(1)

	margemExcelente = decimal.NewFromInt(20)
	margemBom       = decimal.NewFromInt(10)
	margemRegular   = decimal.NewFromInt(5)

	roeExcelente = decimal.NewFromInt(15)
	roeBom       = decimal.NewFromInt(10)
	roeRegular   = decimal.NewFromInt(5)
)

// LiquidezCorrente = ativo circulante / passivo circulante.
// Passivo zero devolve o sentinela indefinido (liquidez ilimitada, banda excelente).
func LiquidezCorrente(ativoCirculante, passivoCirculante decimal.Decimal) Ratio {
	if passivoCirculante.IsZero() {
		return Ratio{Defined: false, Band: BandExcelente}
	}
	v := ativoCirculante.Div(passivoCirculante)
	return Ratio{Value: v, Defined: true, Band: band(v, liquidezExcelente, liquidezBom, liquidezRegular)}
}

// MargemLiquida = resultado líquido / total de receitas × 100 (em %).
func MargemLiquida(resultadoLiquido, totalReceitas decimal.Decimal) Ratio {
	if totalReceitas.IsZero() {
		return Ratio{Defined: false, Band: BandRuim}
	}
	v := resultadoLiquido.Div(totalReceitas).Mul(hundred)
	return Ratio{Value: v, Defined: true, Band: band(v, margemExcelente, margemBom, margemRegular)}
}

// RentabilidadePL = resultado líquido / patrimônio líquido × 100 (estilo ROE, em %).
func RentabilidadePL(resultadoLiquido, patrimonioLiquido decimal.Decimal) Ratio {
	if patrimonioLiquido.IsZero() {
		return Ratio{Defined: false, Band: BandRuim}
	}
	v := resultadoLiquido.Div(patrimonioLiquido).Mul(hundred)
	return Ratio{Value: v, Defined: true, Band: band(v, roeExcelente, roeBom, roeRegular)}
}

func band(v, excelente, bom, regular decimal.Decimal) Band {
	switch {
	case v.GreaterThanOrEqual(excelente):
		return BandExcelente
	case v.GreaterThanOrEqual(bom):
		return BandBom
	case v.GreaterThanOrEqual(regular):
		return BandRegular
	default:
		return BandRuim
	}
}
