// internal/ratelimit/handler.go
package ratelimit

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	Guard *Guard
}

func NewHandler(guard *Guard) *Handler {
	return &Handler{Guard: guard}
}

// DTO do POST /rate-limit/check
type checkRequest struct {
	Identifier string `json:"identifier"`
	Action     string `json:"action"`
}

// Preflight e respostas liberam qualquer origem: o endpoint é chamado
// direto do frontend antes do login, sem credencial.
func escreverCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Authorization, X-Client-Info, Apikey, Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
}

// POST /rate-limit/check
// 200: permitido (ou liberação por falha de infraestrutura)
// 429: bloqueado pelo teto da janela
// 400: campos obrigatórios ausentes
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	escreverCORS(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		escreverJSON(w, http.StatusBadRequest, Decisao{Allowed: false, Error: "JSON mal formado"})
		return
	}
	if req.Identifier == "" || req.Action == "" {
		escreverJSON(w, http.StatusBadRequest, Decisao{Allowed: false, Error: "identifier e action são obrigatórios"})
		return
	}
	acao := Acao(req.Action)
	if !AcaoValida(acao) {
		escreverJSON(w, http.StatusBadRequest, Decisao{Allowed: false, Error: "action deve ser login ou signup"})
		return
	}

	decisao := h.Guard.Verificar(r.Context(), req.Identifier, acao)

	status := http.StatusOK
	if !decisao.Allowed {
		status = http.StatusTooManyRequests
	}
	escreverJSON(w, status, decisao)
}

func escreverJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
