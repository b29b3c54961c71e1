// internal/fluxopagamento/cronograma.go
package fluxopagamento

import "time"

// vencimentoPeriodico devolve o vencimento da parcela i contado a partir do
// primeiro vencimento, avançando de "meses" em "meses". Sem data base,
// devolve nil.
func vencimentoPeriodico(primeiro *time.Time, i, meses int) *time.Time {
	if primeiro == nil {
		return nil
	}
	v := primeiro.AddDate(0, i*meses, 0)
	return &v
}

// anexarParceladas resolve um componente multi-parcela e anexa suas linhas
// ao cronograma, datando cada parcela pela periodicidade em meses.
func anexarParceladas(cron []Parcela, c *Componente, descricao string, valorImovel float64, meses int) []Parcela {
	if c == nil {
		return cron
	}
	total := valorResolvido(*c, valorImovel)
	if total <= 0 {
		return cron
	}

	qtd := c.QtdParcelas
	if qtd <= 0 {
		qtd = 1
	}
	valores := DividirEmParcelas(total, qtd)
	for i, v := range valores {
		cron = append(cron, Parcela{
			Descricao:  descricao,
			Numero:     i + 1,
			Valor:      v,
			Vencimento: vencimentoPeriodico(c.PrimeiroVencimento, i, meses),
		})
	}
	return cron
}

// anexarUnica resolve um componente de pagamento único.
func anexarUnica(cron []Parcela, c *Componente, descricao string, valorImovel float64) []Parcela {
	if c == nil {
		return cron
	}
	total := valorResolvido(*c, valorImovel)
	if total <= 0 {
		return cron
	}
	cron = append(cron, Parcela{
		Descricao:  descricao,
		Numero:     1,
		Valor:      total,
		Vencimento: c.PrimeiroVencimento,
	})
	return cron
}

// GerarCronograma resolve o fluxo completo num cronograma de parcelas
// datadas, todas em moeda local. A ordem segue a vida do contrato:
// ato, entrada, início de obra, mensais, reforços e chaves.
func GerarCronograma(f FluxoPagamento) []Parcela {
	cron := []Parcela{}

	if f.Entrada != nil {
		cron = anexarUnica(cron, f.Entrada.Ato, "Ato", f.ValorImovel)
		entrada := f.Entrada.Componente
		cron = anexarParceladas(cron, &entrada, "Entrada", f.ValorImovel, 1)
	}
	cron = anexarUnica(cron, f.InicioObra, "Início de Obra", f.ValorImovel)
	cron = anexarParceladas(cron, f.Mensais, "Mensal", f.ValorImovel, 1)
	cron = anexarParceladas(cron, f.ReforcoSemestral, "Reforço Semestral", f.ValorImovel, 6)
	cron = anexarParceladas(cron, f.ReforcoAnual, "Reforço Anual", f.ValorImovel, 12)
	cron = anexarUnica(cron, f.Chaves, "Chaves", f.ValorImovel)

	return cron
}

// TotalCronograma soma as parcelas do cronograma em moeda local.
func TotalCronograma(cron []Parcela) float64 {
	var centavos int64
	for _, p := range cron {
		centavos += int64(p.Valor*100 + 0.5)
	}
	return float64(centavos) / 100
}
