// internal/fluxopagamento/validacao.go
package fluxopagamento

import "strings"

// DadosProposta reúne o que a validação de submissão precisa enxergar.
type DadosProposta struct {
	NomeCliente string
	ValorImovel float64
	Fluxo       FluxoPagamento
}

// ValidarProposta é a única verificação estrita do motor, aplicada no
// momento da submissão. Tudo-ou-nada: durante a edição o motor aceita
// qualquer estado parcial.
func ValidarProposta(d DadosProposta) bool {
	if d.ValorImovel <= 0 {
		return false
	}
	if strings.TrimSpace(d.NomeCliente) == "" {
		return false
	}
	if d.Fluxo.Entrada == nil {
		return false
	}
	if ato := d.Fluxo.Entrada.Ato; ato != nil {
		switch ato.Tipo {
		case TipoPercentual:
			if ato.Percentual <= 0 {
				return false
			}
		default:
			if ato.Valor <= 0 {
				return false
			}
		}
	}
	return true
}
