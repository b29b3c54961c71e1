package utils

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// TamanhoSenhaTemporaria é o comprimento padrão das senhas temporárias
// entregues pelo reset de admin.
const TamanhoSenhaTemporaria = 12

// Alfabeto sem caracteres ambíguos (0/O, 1/l/I), já que a senha temporária
// costuma ser ditada por telefone para o corretor.
const alfabetoSenha = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// HashSenha gera um hash bcrypt para a senha informada.
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	return string(hash), err
}

// VerificarSenha compara hash bcrypt com a senha em texto puro.
func VerificarSenha(hash, senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}

// GerarSenhaTemporaria gera uma senha aleatória no tamanho padrão.
func GerarSenhaTemporaria() (string, error) {
	return GerarSenhaComTamanho(TamanhoSenhaTemporaria)
}

// GerarSenhaComTamanho gera uma senha aleatória segura com o tamanho pedido.
func GerarSenhaComTamanho(tamanho int) (string, error) {
	if tamanho <= 0 {
		tamanho = TamanhoSenhaTemporaria
	}
	senha := make([]byte, tamanho)
	max := big.NewInt(int64(len(alfabetoSenha)))
	for i := range senha {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		senha[i] = alfabetoSenha[n.Int64()]
	}
	return string(senha), nil
}
