package fluxopagamento

import (
	"reflect"
	"testing"
)

func TestMigrarPropostaLegadaPreencheCamposNovos(t *testing.T) {
	legado := map[string]any{
		"valorImovel": 350000.0,
		"entrada": map[string]any{
			"tipo":       "percentage",
			"percentual": 20.0,
			"valor":      70000.0,
		},
		"mensais": map[string]any{
			"tipo":        "value",
			"valor":       140000.0,
			"qtdParcelas": 48.0,
		},
	}

	migrado := MigrarPropostaLegada(legado)

	entrada, ok := migrado["entrada"].(map[string]any)
	if !ok {
		t.Fatal("entrada devia continuar presente")
	}
	if _, ok := entrada["ato"]; !ok {
		t.Fatal("migração devia introduzir a chave ato na entrada")
	}
	if entrada["percentual"] != 20.0 || entrada["valor"] != 70000.0 {
		t.Fatal("migração não pode perder dados existentes")
	}

	for _, chave := range []string{"inicioObra", "reforcoSemestral", "reforcoAnual", "chaves"} {
		if _, ok := migrado[chave]; !ok {
			t.Fatalf("migração devia introduzir a chave %s", chave)
		}
	}

	mensais := migrado["mensais"].(map[string]any)
	if _, ok := mensais["primeiroVencimento"]; !ok {
		t.Fatal("componentes existentes deviam ganhar primeiroVencimento")
	}
}

func TestMigrarPropostaLegadaIdempotente(t *testing.T) {
	legado := map[string]any{
		"valorImovel": 350000.0,
		"entrada": map[string]any{
			"tipo":  "value",
			"valor": 50000.0,
		},
	}

	uma := MigrarPropostaLegada(legado)
	duas := MigrarPropostaLegada(uma)

	if !reflect.DeepEqual(uma, duas) {
		t.Fatal("migrar duas vezes devia ser igual a migrar uma vez")
	}
}

func TestMigrarPropostaLegadaJaMigrada(t *testing.T) {
	atual := map[string]any{
		"entrada": map[string]any{
			"tipo": "value",
			"ato":  map[string]any{"tipo": "value", "valor": 1000.0},
		},
	}

	migrado := MigrarPropostaLegada(atual)
	ato := migrado["entrada"].(map[string]any)["ato"].(map[string]any)
	if ato["valor"] != 1000.0 {
		t.Fatal("registro já migrado devia passar intacto")
	}
}

func TestMigrarPropostaLegadaNil(t *testing.T) {
	if got := MigrarPropostaLegada(nil); got != nil {
		t.Fatalf("nil devia continuar nil, veio %v", got)
	}
}
