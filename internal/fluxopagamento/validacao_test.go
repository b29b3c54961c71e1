package fluxopagamento

import "testing"

func propostaValida() DadosProposta {
	return DadosProposta{
		NomeCliente: "Maria Silva",
		ValorImovel: 420000,
		Fluxo: FluxoPagamento{
			ValorImovel: 420000,
			Entrada: &Entrada{
				Componente: Componente{Tipo: TipoPercentual, Percentual: 20},
			},
		},
	}
}

func TestValidarProposta(t *testing.T) {
	casos := []struct {
		nome   string
		mudar  func(*DadosProposta)
		valida bool
	}{
		{"proposta completa", func(d *DadosProposta) {}, true},
		{"imovel zerado", func(d *DadosProposta) { d.ValorImovel = 0 }, false},
		{"imovel negativo", func(d *DadosProposta) { d.ValorImovel = -1 }, false},
		{"cliente vazio", func(d *DadosProposta) { d.NomeCliente = "   " }, false},
		{"sem entrada", func(d *DadosProposta) { d.Fluxo.Entrada = nil }, false},
		{"ato percentual zerado", func(d *DadosProposta) {
			d.Fluxo.Entrada.Ato = &Componente{Tipo: TipoPercentual, Percentual: 0}
		}, false},
		{"ato valor negativo", func(d *DadosProposta) {
			d.Fluxo.Entrada.Ato = &Componente{Tipo: TipoValor, Valor: -50}
		}, false},
		{"ato valido", func(d *DadosProposta) {
			d.Fluxo.Entrada.Ato = &Componente{Tipo: TipoValor, Valor: 5000}
		}, true},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			d := propostaValida()
			c.mudar(&d)
			if got := ValidarProposta(d); got != c.valida {
				t.Fatalf("esperava %v, veio %v", c.valida, got)
			}
		})
	}
}
