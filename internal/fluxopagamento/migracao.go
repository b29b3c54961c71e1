// internal/fluxopagamento/migracao.go
package fluxopagamento

// Chaves de componente que todo fluxo persistido precisa carregar.
// Registros antigos foram salvos antes de "ato" e dos componentes de
// reforço existirem.
var chavesComponentes = []string{
	"entrada",
	"inicioObra",
	"mensais",
	"reforcoSemestral",
	"reforcoAnual",
	"chaves",
}

// MigrarPropostaLegada preenche num fluxo persistido os campos opcionais
// introduzidos depois da gravação do registro, sem perder nenhum dado
// existente. Idempotente: a presença da chave "ato" na entrada (o campo
// mais novo) curto-circuita a migração.
func MigrarPropostaLegada(raw map[string]any) map[string]any {
	if raw == nil {
		return nil
	}

	if entrada, ok := raw["entrada"].(map[string]any); ok {
		if _, migrado := entrada["ato"]; migrado {
			return raw
		}
	}

	for _, chave := range chavesComponentes {
		if _, ok := raw[chave]; !ok {
			raw[chave] = nil
		}
	}

	entrada, ok := raw["entrada"].(map[string]any)
	if !ok {
		entrada = map[string]any{}
		raw["entrada"] = entrada
	}
	entrada["ato"] = nil

	for _, chave := range chavesComponentes {
		comp, ok := raw[chave].(map[string]any)
		if !ok {
			continue
		}
		if _, ok := comp["primeiroVencimento"]; !ok {
			comp["primeiroVencimento"] = nil
		}
	}

	return raw
}
