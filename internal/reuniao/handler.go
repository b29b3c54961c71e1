package reuniao

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/VivazImoveis/api-vendas/internal/auth"
	"github.com/VivazImoveis/api-vendas/internal/notificacao"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// DTO usado no POST/PUT de reuniões
type ReuniaoDTO struct {
	Titulo        string    `json:"titulo"`
	Inicio        time.Time `json:"inicio"`
	Fim           time.Time `json:"fim"`
	Local         string    `json:"local"`
	Link          string    `json:"link"`
	Participantes []string  `json:"participantes"`
}

func (h *Handler) buscarComAcesso(w http.ResponseWriter, r *http.Request) *Reuniao {
	userID, _ := auth.UsuarioDoContexto(r.Context())
	isAdmin := auth.IsAdminDoContexto(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return nil
	}

	m, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Reunião não encontrada", http.StatusNotFound)
		return nil
	}
	if !isAdmin && m.CorretorID != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return nil
	}
	return m
}

func validarIntervalo(w http.ResponseWriter, in *ReuniaoDTO) bool {
	if in.Titulo == "" {
		http.Error(w, "Título é obrigatório", http.StatusBadRequest)
		return false
	}
	if in.Inicio.IsZero() || in.Fim.IsZero() || !in.Fim.After(in.Inicio) {
		http.Error(w, "Período inválido: fim deve ser depois do início", http.StatusBadRequest)
		return false
	}
	return true
}

// GET /reunioes?de=...&ate=...
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioDoContexto(r.Context())

	var de, ate *time.Time
	if s := r.URL.Query().Get("de"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			de = &t
		}
	}
	if s := r.URL.Query().Get("ate"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			ate = &t
		}
	}

	reunioes, err := h.Repo.ListarPorCorretor(userID, de, ate)
	if err != nil {
		http.Error(w, "Erro ao listar reuniões", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(reunioes)
}

// POST /reunioes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioDoContexto(r.Context())

	var in ReuniaoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if !validarIntervalo(w, &in) {
		return
	}

	conflito, err := h.Repo.ExisteConflito(userID, in.Inicio, in.Fim, 0)
	if err != nil {
		http.Error(w, "Erro ao verificar agenda", http.StatusInternalServerError)
		return
	}
	if conflito {
		http.Error(w, "Já existe reunião nesse horário", http.StatusConflict)
		return
	}

	m := Reuniao{
		Titulo:        in.Titulo,
		Inicio:        in.Inicio,
		Fim:           in.Fim,
		Local:         in.Local,
		Link:          in.Link,
		Participantes: in.Participantes,
		CorretorID:    userID,
	}
	if err := h.Repo.Criar(&m); err != nil {
		http.Error(w, "Erro ao criar reunião", http.StatusInternalServerError)
		return
	}

	notificacao.EnviarAlertaReuniao(m.Titulo, m.Inicio)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(m)
}

// PUT /reunioes/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	m := h.buscarComAcesso(w, r)
	if m == nil {
		return
	}

	var in ReuniaoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if !validarIntervalo(w, &in) {
		return
	}

	conflito, err := h.Repo.ExisteConflito(m.CorretorID, in.Inicio, in.Fim, m.ID)
	if err != nil {
		http.Error(w, "Erro ao verificar agenda", http.StatusInternalServerError)
		return
	}
	if conflito {
		http.Error(w, "Já existe reunião nesse horário", http.StatusConflict)
		return
	}

	m.Titulo = in.Titulo
	m.Inicio = in.Inicio
	m.Fim = in.Fim
	m.Local = in.Local
	m.Link = in.Link
	m.Participantes = in.Participantes

	if err := h.Repo.Atualizar(m); err != nil {
		http.Error(w, "Erro ao atualizar reunião", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}

// DELETE /reunioes/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	m := h.buscarComAcesso(w, r)
	if m == nil {
		return
	}

	if err := h.Repo.DeletarPorID(m.ID); err != nil {
		http.Error(w, "Erro ao deletar reunião", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
