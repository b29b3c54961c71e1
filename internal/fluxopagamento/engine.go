// internal/fluxopagamento/engine.go
package fluxopagamento

import (
	"math"
	"strconv"
	"strings"
)

/* ============================== Sincronização ============================== */

// arredondarCentavos arredonda um valor monetário para o centavo.
func arredondarCentavos(v float64) float64 {
	return math.Round(v*100) / 100
}

// ConverterRepresentacao troca o campo autoritativo do componente e recalcula
// o campo derivado a partir do valor do imóvel. Nunca falha: com valor de
// imóvel zero ou negativo o percentual degrada para 0.
func ConverterRepresentacao(c Componente, alvo TipoRepresentacao, valorImovel float64) Componente {
	switch alvo {
	case TipoPercentual:
		if valorImovel <= 0 {
			c.Percentual = 0
		} else {
			c.Percentual = c.Valor / valorImovel * 100
		}
	case TipoValor:
		c.Valor = arredondarCentavos(valorImovel * c.Percentual / 100)
	}
	c.Tipo = alvo
	return c
}

// DefinirPorPercentual interpreta a digitação livre de um percentual
// (entrada inválida ou incompleta vira 0) e devolve o par sincronizado.
func DefinirPorPercentual(raw string, valorImovel float64) (percentual, valor float64) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	percentual, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(percentual) || math.IsInf(percentual, 0) {
		percentual = 0
	}
	valor = arredondarCentavos(valorImovel * percentual / 100)
	return percentual, valor
}

// DefinirPorValor interpreta a digitação de um valor monetário na convenção
// de centavos: a sequência de dígitos é lida como centavos, os dois últimos
// dígitos são sempre a parte decimal. "12345" vira 123.45, nunca 12345.00.
func DefinirPorValor(raw string, valorImovel float64) (valor, percentual float64) {
	var digitos strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digitos.WriteRune(r)
		}
	}
	if digitos.Len() == 0 {
		return 0, 0
	}
	centavos, err := strconv.ParseInt(digitos.String(), 10, 64)
	if err != nil {
		return 0, 0
	}
	valor = float64(centavos) / 100
	if valorImovel > 0 {
		percentual = valor / valorImovel * 100
	}
	return valor, percentual
}

/* ============================== Parcelamento ============================== */

// DividirEmParcelas divide o total em qtd parcelas iguais truncadas no
// centavo, com o resíduo inteiro somado na ÚLTIMA parcela. A soma da
// sequência devolvida é sempre igual ao total, centavo a centavo.
// Para qtd <= 0 devolve sequência vazia.
func DividirEmParcelas(total float64, qtd int) []float64 {
	if qtd <= 0 {
		return []float64{}
	}

	centavosTotal := int64(math.Round(total * 100))
	base := centavosTotal / int64(qtd)
	residuo := centavosTotal - base*int64(qtd)

	parcelas := make([]float64, qtd)
	for i := range parcelas {
		parcelas[i] = float64(base) / 100
	}
	parcelas[qtd-1] = float64(base+residuo) / 100
	return parcelas
}

/* ============================== Conversão de moeda ============================== */

// ConverterParaMoeda converte um valor em moeda local para a moeda de
// exibição. Não altera nada do fluxo persistido; é só apresentação.
func ConverterParaMoeda(valorBase float64, m Moeda) float64 {
	if m.Taxa <= 0 {
		return valorBase
	}
	return valorBase / m.Taxa
}

/* ============================== Resolução ============================== */

// valorResolvido devolve o valor absoluto do componente segundo o campo
// autoritativo atual.
func valorResolvido(c Componente, valorImovel float64) float64 {
	if c.Tipo == TipoPercentual {
		return arredondarCentavos(valorImovel * c.Percentual / 100)
	}
	return arredondarCentavos(c.Valor)
}
