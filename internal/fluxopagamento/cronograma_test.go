package fluxopagamento

import (
	"math"
	"testing"
	"time"
)

func TestGerarCronogramaFluxoCompleto(t *testing.T) {
	primeiroMensal := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	ato := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	f := FluxoPagamento{
		ValorImovel: 500000,
		Moeda:       Moeda{Codigo: "BRL", Simbolo: "R$", Taxa: 1, Nome: "Real"},
		Entrada: &Entrada{
			Componente: Componente{Tipo: TipoPercentual, Percentual: 10, QtdParcelas: 2},
			Ato:        &Componente{Tipo: TipoValor, Valor: 5000, PrimeiroVencimento: &ato},
		},
		Mensais:          &Componente{Tipo: TipoPercentual, Percentual: 30, QtdParcelas: 36, PrimeiroVencimento: &primeiroMensal},
		ReforcoSemestral: &Componente{Tipo: TipoValor, Valor: 60000, QtdParcelas: 6},
		Chaves:           &Componente{Tipo: TipoPercentual, Percentual: 45.2},
	}

	cron := GerarCronograma(f)

	// 1 ato + 2 entrada + 36 mensais + 6 reforços + 1 chaves
	if len(cron) != 46 {
		t.Fatalf("esperava 46 parcelas, veio %d", len(cron))
	}

	if cron[0].Descricao != "Ato" || !quaseIgual(cron[0].Valor, 5000) {
		t.Fatalf("primeira linha devia ser o Ato de 5000, veio %s %.2f", cron[0].Descricao, cron[0].Valor)
	}
	if cron[0].Vencimento == nil || !cron[0].Vencimento.Equal(ato) {
		t.Fatalf("vencimento do ato incorreto")
	}

	// entrada de 10% dividida em 2
	if !quaseIgual(cron[1].Valor, 25000) || !quaseIgual(cron[2].Valor, 25000) {
		t.Fatalf("entrada devia ser 2x 25000, veio %.2f e %.2f", cron[1].Valor, cron[2].Valor)
	}

	// mensais datadas mês a mês
	m1, m12 := cron[3], cron[14]
	if m1.Vencimento == nil || !m1.Vencimento.Equal(primeiroMensal) {
		t.Fatalf("primeira mensal devia vencer em %s", primeiroMensal)
	}
	if m12.Vencimento == nil || !m12.Vencimento.Equal(primeiroMensal.AddDate(0, 11, 0)) {
		t.Fatalf("décima segunda mensal datada errado: %v", m12.Vencimento)
	}

	// soma das mensais bate com o total declarado (30% de 500000)
	var somaMensais int64
	for _, p := range cron[3:39] {
		somaMensais += int64(math.Round(p.Valor * 100))
	}
	if somaMensais != 15000000 {
		t.Fatalf("mensais deviam somar 150000.00, veio %d centavos", somaMensais)
	}
}

func TestGerarCronogramaComponentesAusentes(t *testing.T) {
	f := FluxoPagamento{ValorImovel: 300000}
	if cron := GerarCronograma(f); len(cron) != 0 {
		t.Fatalf("fluxo vazio devia gerar cronograma vazio, veio %d linhas", len(cron))
	}

	// componente zerado não entra no cronograma
	f.Mensais = &Componente{Tipo: TipoPercentual, Percentual: 0, QtdParcelas: 12}
	if cron := GerarCronograma(f); len(cron) != 0 {
		t.Fatalf("componente zerado não devia gerar parcelas")
	}
}

func TestGerarCronogramaReforcoSemestralDatas(t *testing.T) {
	primeiro := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	f := FluxoPagamento{
		ValorImovel:      400000,
		ReforcoSemestral: &Componente{Tipo: TipoValor, Valor: 40000, QtdParcelas: 4, PrimeiroVencimento: &primeiro},
	}

	cron := GerarCronograma(f)
	if len(cron) != 4 {
		t.Fatalf("esperava 4 reforços, veio %d", len(cron))
	}
	quer := primeiro.AddDate(0, 18, 0)
	if !cron[3].Vencimento.Equal(quer) {
		t.Fatalf("quarto reforço devia vencer em %s, veio %s", quer, cron[3].Vencimento)
	}
}
