package utils

import (
	"strings"
	"testing"
)

func TestHashEVerificarSenha(t *testing.T) {
	hash, err := HashSenha("segredo123")
	if err != nil {
		t.Fatalf("HashSenha: %v", err)
	}
	if !VerificarSenha(hash, "segredo123") {
		t.Fatal("senha correta recusada")
	}
	if VerificarSenha(hash, "outra") {
		t.Fatal("senha errada aceita")
	}
}

func TestGerarSenhaComTamanho(t *testing.T) {
	senha, err := GerarSenhaComTamanho(20)
	if err != nil {
		t.Fatalf("GerarSenhaComTamanho: %v", err)
	}
	if len(senha) != 20 {
		t.Fatalf("tamanho = %d, esperado 20", len(senha))
	}
	if strings.ContainsAny(senha, "0O1lI") {
		t.Fatalf("senha contém caractere ambíguo: %q", senha)
	}

	padrao, err := GerarSenhaTemporaria()
	if err != nil {
		t.Fatalf("GerarSenhaTemporaria: %v", err)
	}
	if len(padrao) != TamanhoSenhaTemporaria {
		t.Fatalf("tamanho padrão = %d, esperado %d", len(padrao), TamanhoSenhaTemporaria)
	}

	if s, err := GerarSenhaComTamanho(0); err != nil || len(s) != TamanhoSenhaTemporaria {
		t.Fatalf("tamanho inválido deveria cair no padrão, veio %q (%v)", s, err)
	}
}
