package enquete

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"gorm.io/gorm"
)

// Dois envios simultâneos do mesmo token podem passar pelo JaVotou e cair no
// índice único; esse caminho deve virar 409, nunca 500.
func TestStatusDoErroDeVoto(t *testing.T) {
	casos := []struct {
		nome   string
		err    error
		status int
	}{
		{"voto duplicado", gorm.ErrDuplicatedKey, http.StatusConflict},
		{"duplicado embrulhado", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), http.StatusConflict},
		{"falha de banco", errors.New("conexão recusada"), http.StatusInternalServerError},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			status, _ := statusDoErroDeVoto(c.err)
			if status != c.status {
				t.Fatalf("status = %d, esperado %d", status, c.status)
			}
		})
	}
}
