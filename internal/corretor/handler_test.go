package corretor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/VivazImoveis/api-vendas/internal/auth"
)

func requisicaoSenhaTemporaria(isAdmin bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/corretores/7/senha-temporaria", nil)
	ctx := context.WithValue(req.Context(), auth.CtxUserID, uint(2))
	ctx = context.WithValue(ctx, auth.CtxIsAdmin, isAdmin)
	return req.WithContext(ctx)
}

// Reset de senha é privilégio de admin; corretor comum autenticado recebe 403
// antes de qualquer acesso ao banco.
func TestGerarSenhaTemporariaNegaNaoAdmin(t *testing.T) {
	h := NewHandler(nil, nil)

	r := mux.NewRouter()
	r.HandleFunc("/corretores/{id}/senha-temporaria", h.GerarSenhaTemporaria).Methods("POST")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, requisicaoSenhaTemporaria(false))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, esperado %d", rec.Code, http.StatusForbidden)
	}
	if corpo := rec.Body.String(); strings.Contains(corpo, "senhaTemporaria") {
		t.Fatalf("resposta de recusa não pode conter senha: %q", corpo)
	}
}

// A rota também fica atrás do RequireAdmin, como as demais rotas de admin.
func TestRotaSenhaTemporariaExigeAdmin(t *testing.T) {
	h := NewHandler(nil, nil)

	r := mux.NewRouter()
	r.Handle("/corretores/{id}/senha-temporaria",
		auth.RequireAdmin(http.HandlerFunc(h.GerarSenhaTemporaria))).Methods("POST")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, requisicaoSenhaTemporaria(false))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, esperado %d", rec.Code, http.StatusForbidden)
	}
}
