package ratelimit

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

var errTesteInfra = errors.New("banco indisponível")

func novoHandlerDeTeste() (*Handler, *fakeStore) {
	store := &fakeStore{}
	return NewHandler(NewGuard(store)), store
}

func postCheck(t *testing.T, h *Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/rate-limit/check", bytes.NewReader(b))
	rec := httptest.NewRecorder()
	h.Check(rec, req)
	return rec
}

func TestCheckPermitido(t *testing.T) {
	h, _ := novoHandlerDeTeste()

	rec := postCheck(t, h, map[string]string{"identifier": "a@b.com", "action": "login"})
	if rec.Code != http.StatusOK {
		t.Fatalf("esperava 200, veio %d", rec.Code)
	}

	var d Decisao
	if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
		t.Fatal(err)
	}
	if !d.Allowed {
		t.Fatal("primeira tentativa devia ser permitida")
	}
	if d.RemainingAttempts == nil || *d.RemainingAttempts != 4 {
		t.Fatalf("esperava 4 restantes, veio %v", d.RemainingAttempts)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("resposta devia liberar qualquer origem")
	}
}

func TestCheckBloqueado429(t *testing.T) {
	h, _ := novoHandlerDeTeste()

	corpo := map[string]string{"identifier": "a@b.com", "action": "login"}
	for i := 0; i < 5; i++ {
		if rec := postCheck(t, h, corpo); rec.Code != http.StatusOK {
			t.Fatalf("tentativa %d: esperava 200, veio %d", i+1, rec.Code)
		}
	}

	rec := postCheck(t, h, corpo)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("sexta tentativa: esperava 429, veio %d", rec.Code)
	}

	var d Decisao
	_ = json.Unmarshal(rec.Body.Bytes(), &d)
	if d.Allowed || d.ResetTime == nil || d.Message == "" {
		t.Fatalf("resposta de bloqueio incompleta: %+v", d)
	}
}

func TestCheckCamposObrigatorios(t *testing.T) {
	h, _ := novoHandlerDeTeste()

	casos := []map[string]string{
		{"action": "login"},
		{"identifier": "a@b.com"},
		{"identifier": "a@b.com", "action": "delete"},
		{},
	}
	for _, c := range casos {
		if rec := postCheck(t, h, c); rec.Code != http.StatusBadRequest {
			t.Fatalf("%v: esperava 400, veio %d", c, rec.Code)
		}
	}
}

func TestCheckFailOpenResponde200(t *testing.T) {
	h, store := novoHandlerDeTeste()
	store.errContar = errTesteInfra

	rec := postCheck(t, h, map[string]string{"identifier": "a@b.com", "action": "login"})
	if rec.Code != http.StatusOK {
		t.Fatalf("fail-open devia responder 200, veio %d", rec.Code)
	}
	var d Decisao
	_ = json.Unmarshal(rec.Body.Bytes(), &d)
	if !d.Allowed {
		t.Fatal("fail-open devia permitir")
	}
}

func TestCheckPreflightOptions(t *testing.T) {
	h, _ := novoHandlerDeTeste()

	req := httptest.NewRequest(http.MethodOptions, "/rate-limit/check", nil)
	rec := httptest.NewRecorder()
	h.Check(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("preflight devia responder 200, veio %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("preflight devia liberar qualquer origem")
	}
	if rec.Header().Get("Access-Control-Allow-Headers") == "" {
		t.Fatal("preflight devia listar os headers aceitos")
	}
}
