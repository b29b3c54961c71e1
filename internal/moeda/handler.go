// internal/moeda/handler.go
package moeda

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// DTO usado no POST/PUT de moedas
type MoedaDTO struct {
	Codigo  string  `json:"codigo"`
	Simbolo string  `json:"simbolo"`
	Nome    string  `json:"nome"`
	Taxa    float64 `json:"taxa"`
}

// GET /moedas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	moedas, err := h.Repo.ListarTodas()
	if err != nil {
		http.Error(w, "Erro ao listar moedas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(moedas)
}

// POST /moedas (admin)
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in MoedaDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.Codigo == "" || in.Taxa <= 0 {
		http.Error(w, "Código obrigatório e taxa deve ser positiva", http.StatusBadRequest)
		return
	}

	m := Moeda{Codigo: in.Codigo, Simbolo: in.Simbolo, Nome: in.Nome, Taxa: in.Taxa}
	if err := h.Repo.Salvar(&m); err != nil {
		http.Error(w, "Erro ao salvar moeda", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(m)
}

// PUT /moedas/{id} (admin)
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Moeda não encontrada", http.StatusNotFound)
		return
	}

	var in MoedaDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.Taxa <= 0 {
		http.Error(w, "Taxa deve ser positiva", http.StatusBadRequest)
		return
	}

	existente.Codigo = in.Codigo
	existente.Simbolo = in.Simbolo
	existente.Nome = in.Nome
	existente.Taxa = in.Taxa

	if err := h.Repo.Salvar(existente); err != nil {
		http.Error(w, "Erro ao atualizar moeda", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// DELETE /moedas/{id} (admin)
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	m, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Moeda não encontrada", http.StatusNotFound)
		return
	}
	if m.Codigo == "BRL" {
		http.Error(w, "A moeda base não pode ser removida", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeletarPorID(uint(id)); err != nil {
		http.Error(w, "Erro ao remover moeda", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
