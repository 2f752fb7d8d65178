package contabil_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojafacil/pdv-api/internal/domain/contabil"
)

func TestLiquidezCorrente_Bandas(t *testing.T) {
	cases := []struct {
		ativo, passivo float64
		band           contabil.Band
	}{
		{400, 100, contabil.BandExcelente}, // 4.0
		{180, 100, contabil.BandBom},       // 1.8
		{120, 100, contabil.BandRegular},   // 1.2
		{80, 100, contabil.BandRuim},       // 0.8
	}
	for _, c := range cases {
		r := contabil.LiquidezCorrente(decimal.NewFromFloat(c.ativo), decimal.NewFromFloat(c.passivo))
		require.True(t, r.Defined)
		assert.Equal(t, c.band, r.Band, "liquidez %v/%v", c.ativo, c.passivo)
	}
}

// Passivo circulante zero: sentinela indefinido, nunca pânico de divisão.
func TestLiquidezCorrente_PassivoZero(t *testing.T) {
	r := contabil.LiquidezCorrente(decimal.NewFromInt(500), decimal.Zero)
	assert.False(t, r.Defined, "denominador zero deve produzir sentinela, não erro")
	assert.Equal(t, contabil.BandExcelente, r.Band)
}

func TestMargemLiquida_Percentual(t *testing.T) {
	r := contabil.MargemLiquida(decimal.NewFromInt(150), decimal.NewFromInt(1000))
	require.True(t, r.Defined)
	assert.True(t, r.Value.Equal(decimal.NewFromInt(15)), "150/1000 = 15 por cento")
	assert.Equal(t, contabil.BandBom, r.Band)
}

func TestMargemLiquida_ReceitaZero(t *testing.T) {
	r := contabil.MargemLiquida(decimal.NewFromInt(10), decimal.Zero)
	assert.False(t, r.Defined)
}

func TestRentabilidadePL_Bandas(t *testing.T) {
	r := contabil.RentabilidadePL(decimal.NewFromInt(200), decimal.NewFromInt(1000))
	require.True(t, r.Defined)
	assert.True(t, r.Value.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, contabil.BandExcelente, r.Band)

	r = contabil.RentabilidadePL(decimal.NewFromInt(30), decimal.NewFromInt(1000))
	assert.Equal(t, contabil.BandRuim, r.Band, "3 por cento fica abaixo do limiar regular")
}

func TestRentabilidadePL_PatrimonioZero(t *testing.T) {
	r := contabil.RentabilidadePL(decimal.NewFromInt(10), decimal.Zero)
	assert.False(t, r.Defined)
}

// Margem negativa cai na banda ruim.
func TestMargemLiquida_Prejuizo(t *testing.T) {
	r := contabil.MargemLiquida(decimal.NewFromInt(-50), decimal.NewFromInt(1000))
	require.True(t, r.Defined)
	assert.Equal(t, contabil.BandRuim, r.Band)
}
