package playbook

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

// DTOs
type CategoriaDTO struct {
	Nome  string `json:"nome"`
	Ordem int    `json:"ordem"`
}

type MensagemDTO struct {
	CategoriaID uint     `json:"categoriaId"`
	Titulo      string   `json:"titulo"`
	Conteudo    string   `json:"conteudo"`
	Etiquetas   []string `json:"etiquetas"`
}

/* ============================== Categorias ============================== */

// GET /playbook/categorias
func (h *Handler) ListarCategorias(w http.ResponseWriter, r *http.Request) {
	categorias, err := h.Repo.ListarCategorias()
	if err != nil {
		http.Error(w, "Erro ao listar categorias", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(categorias)
}

// POST /playbook/categorias (admin)
func (h *Handler) CriarCategoria(w http.ResponseWriter, r *http.Request) {
	var in CategoriaDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.Nome == "" {
		http.Error(w, "Nome da categoria é obrigatório", http.StatusBadRequest)
		return
	}

	c := CategoriaMensagem{Nome: in.Nome, Ordem: in.Ordem}
	if err := h.Repo.SalvarCategoria(&c); err != nil {
		http.Error(w, "Erro ao criar categoria", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// DELETE /playbook/categorias/{id} (admin)
func (h *Handler) DeletarCategoria(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeletarCategoria(uint(id)); err != nil {
		http.Error(w, "Categoria não encontrada", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

/* ============================== Mensagens ============================== */

// GET /playbook/categorias/{id}/mensagens
func (h *Handler) ListarMensagens(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da categoria inválido", http.StatusBadRequest)
		return
	}

	mensagens, err := h.Repo.ListarMensagensPorCategoria(uint(id))
	if err != nil {
		http.Error(w, "Erro ao listar mensagens", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(mensagens)
}

// POST /playbook/mensagens (admin)
func (h *Handler) CriarMensagem(w http.ResponseWriter, r *http.Request) {
	var in MensagemDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.CategoriaID == 0 || in.Titulo == "" || in.Conteudo == "" {
		http.Error(w, "Categoria, título e conteúdo são obrigatórios", http.StatusBadRequest)
		return
	}

	m := Mensagem{
		CategoriaID: in.CategoriaID,
		Titulo:      in.Titulo,
		Conteudo:    in.Conteudo,
		Etiquetas:   in.Etiquetas,
	}
	if err := h.Repo.SalvarMensagem(&m); err != nil {
		http.Error(w, "Erro ao criar mensagem", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(m)
}

// PUT /playbook/mensagens/{id} (admin)
func (h *Handler) AtualizarMensagem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.BuscarMensagem(uint(id))
	if err != nil {
		http.Error(w, "Mensagem não encontrada", http.StatusNotFound)
		return
	}

	var in MensagemDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	existente.Titulo = in.Titulo
	existente.Conteudo = in.Conteudo
	existente.Etiquetas = in.Etiquetas
	if in.CategoriaID != 0 {
		existente.CategoriaID = in.CategoriaID
	}

	if err := h.Repo.SalvarMensagem(existente); err != nil {
		http.Error(w, "Erro ao atualizar mensagem", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// DELETE /playbook/mensagens/{id} (admin)
func (h *Handler) DeletarMensagem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeletarMensagem(uint(id)); err != nil {
		http.Error(w, "Mensagem não encontrada", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /playbook/mensagens/{id}/copiar
// Registra que o corretor copiou a mensagem para usar com um cliente.
func (h *Handler) RegistrarCopia(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.IncrementarCopias(uint(id)); err != nil {
		http.Error(w, "Erro ao registrar cópia", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"message":"Cópia registrada"}`))
}
