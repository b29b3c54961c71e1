package fluxopagamento

import (
	"math"
	"testing"
)

func quaseIgual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDividirEmParcelasSomaExata(t *testing.T) {
	casos := []struct {
		nome  string
		total float64
		qtd   int
		quer  []float64
	}{
		{"cem em tres", 100.00, 3, []float64{33.33, 33.33, 33.34}},
		{"divisao exata", 90.00, 3, []float64{30.00, 30.00, 30.00}},
		{"um centavo sobrando", 0.10, 3, []float64{0.03, 0.03, 0.04}},
		{"parcela unica", 1234.56, 1, []float64{1234.56}},
		{"sessenta mensais", 250000.00, 60, nil},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			got := DividirEmParcelas(c.total, c.qtd)
			if len(got) != c.qtd {
				t.Fatalf("esperava %d parcelas, veio %d", c.qtd, len(got))
			}

			if c.quer != nil {
				for i := range c.quer {
					if !quaseIgual(got[i], c.quer[i]) {
						t.Fatalf("parcela %d: esperava %.2f, veio %.2f", i+1, c.quer[i], got[i])
					}
				}
			}

			// soma exata ao centavo, sempre
			var centavos int64
			for _, v := range got {
				centavos += int64(math.Round(v * 100))
			}
			if centavos != int64(math.Round(c.total*100)) {
				t.Fatalf("soma %d centavos difere do total %d", centavos, int64(math.Round(c.total*100)))
			}

			// todas menos a última são iguais; o ajuste fica só na última
			for i := 0; i < len(got)-1; i++ {
				if !quaseIgual(got[i], got[0]) {
					t.Fatalf("parcela %d difere da primeira antes da última", i+1)
				}
			}
			if len(got) > 1 && got[len(got)-1] < got[0] {
				t.Fatalf("última parcela menor que as demais")
			}
		})
	}
}

func TestDividirEmParcelasQtdInvalida(t *testing.T) {
	if got := DividirEmParcelas(100, 0); len(got) != 0 {
		t.Fatalf("qtd 0 devia devolver vazio, veio %v", got)
	}
	if got := DividirEmParcelas(100, -3); len(got) != 0 {
		t.Fatalf("qtd negativa devia devolver vazio, veio %v", got)
	}
}

func TestConverterRepresentacaoIdaEVolta(t *testing.T) {
	c := Componente{Tipo: TipoPercentual, Percentual: 17.5}
	valorImovel := 480000.00

	c = ConverterRepresentacao(c, TipoValor, valorImovel)
	if !quaseIgual(c.Valor, 84000.00) {
		t.Fatalf("esperava valor 84000.00, veio %.2f", c.Valor)
	}

	c = ConverterRepresentacao(c, TipoPercentual, valorImovel)
	if math.Abs(c.Percentual-17.5) > 1e-6 {
		t.Fatalf("ida e volta devia preservar o percentual, veio %.6f", c.Percentual)
	}
	if c.Tipo != TipoPercentual {
		t.Fatalf("tipo final devia ser percentual, veio %s", c.Tipo)
	}
}

func TestConverterRepresentacaoImovelZerado(t *testing.T) {
	c := Componente{Tipo: TipoValor, Valor: 5000}

	got := ConverterRepresentacao(c, TipoPercentual, 0)
	if got.Percentual != 0 {
		t.Fatalf("com imóvel zerado o percentual devia degradar para 0, veio %.2f", got.Percentual)
	}

	got = ConverterRepresentacao(c, TipoPercentual, -10)
	if got.Percentual != 0 {
		t.Fatalf("com imóvel negativo o percentual devia degradar para 0, veio %.2f", got.Percentual)
	}

	// firstDueDate e demais campos passam intactos
	if got.Valor != c.Valor || got.QtdParcelas != c.QtdParcelas {
		t.Fatalf("conversão não devia mexer nos demais campos")
	}
}

func TestDefinirPorValorConvencaoCentavos(t *testing.T) {
	casos := []struct {
		raw  string
		quer float64
	}{
		{"136952", 1369.52},
		{"12345", 123.45},
		{"R$ 1.369,52", 1369.52},
		{"7", 0.07},
		{"", 0},
		{"abc", 0},
	}

	for _, c := range casos {
		valor, _ := DefinirPorValor(c.raw, 100000)
		if !quaseIgual(valor, c.quer) {
			t.Fatalf("%q: esperava %.2f, veio %.2f", c.raw, c.quer, valor)
		}
	}
}

func TestDefinirPorValorPercentualDerivado(t *testing.T) {
	valor, pct := DefinirPorValor("2500000", 100000) // 25000.00
	if !quaseIgual(valor, 25000.00) {
		t.Fatalf("esperava 25000.00, veio %.2f", valor)
	}
	if math.Abs(pct-25.0) > 1e-6 {
		t.Fatalf("esperava 25%%, veio %.6f", pct)
	}

	// imóvel zerado nunca divide por zero
	_, pct = DefinirPorValor("2500000", 0)
	if pct != 0 {
		t.Fatalf("com imóvel zerado o percentual devia ser 0, veio %.2f", pct)
	}
}

func TestDefinirPorPercentualEntradaLivre(t *testing.T) {
	casos := []struct {
		raw      string
		querPct  float64
		querValo float64
	}{
		{"20", 20, 96000.00},
		{"12,5", 12.5, 60000.00},
		{" 7.25 ", 7.25, 34800.00},
		{"", 0, 0},
		{"-", 0, 0},
		{"1e", 0, 0},
	}

	for _, c := range casos {
		pct, valor := DefinirPorPercentual(c.raw, 480000)
		if math.Abs(pct-c.querPct) > 1e-6 || !quaseIgual(valor, c.querValo) {
			t.Fatalf("%q: esperava (%.2f, %.2f), veio (%.2f, %.2f)", c.raw, c.querPct, c.querValo, pct, valor)
		}
	}
}

func TestConverterParaMoeda(t *testing.T) {
	usd := Moeda{Codigo: "USD", Simbolo: "$", Taxa: 5.0, Nome: "Dólar Americano"}
	if got := ConverterParaMoeda(500000, usd); !quaseIgual(got, 100000) {
		t.Fatalf("esperava 100000, veio %.2f", got)
	}

	brl := Moeda{Codigo: "BRL", Simbolo: "R$", Taxa: 1, Nome: "Real"}
	if got := ConverterParaMoeda(500000, brl); !quaseIgual(got, 500000) {
		t.Fatalf("BRL devia ser identidade, veio %.2f", got)
	}

	// taxa inválida degrada para o valor base em vez de dividir por zero
	quebrada := Moeda{Codigo: "XXX", Taxa: 0}
	if got := ConverterParaMoeda(500000, quebrada); !quaseIgual(got, 500000) {
		t.Fatalf("taxa 0 devia devolver o valor base, veio %.2f", got)
	}
}
