package tarefa

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/VivazImoveis/api-vendas/internal/auth"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// DTOs
type QuadroDTO struct {
	Nome string `json:"nome"`
}

type TarefaDTO struct {
	QuadroID  uint       `json:"quadroId"`
	Titulo    string     `json:"titulo"`
	Descricao string     `json:"descricao"`
	Coluna    string     `json:"coluna"`
	Prazo     *time.Time `json:"prazo"`
}

type MoverDTO struct {
	Coluna  string `json:"coluna"`
	Posicao int    `json:"posicao"`
}

func (h *Handler) quadroComAcesso(w http.ResponseWriter, r *http.Request, quadroID uint) *Quadro {
	userID, _ := auth.UsuarioDoContexto(r.Context())
	isAdmin := auth.IsAdminDoContexto(r.Context())

	q, err := h.Repo.BuscarQuadro(quadroID)
	if err != nil {
		http.Error(w, "Quadro não encontrado", http.StatusNotFound)
		return nil
	}
	if !isAdmin && q.CorretorID != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return nil
	}
	return q
}

/* ============================== Quadros ============================== */

// GET /quadros
func (h *Handler) ListarQuadros(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioDoContexto(r.Context())

	quadros, err := h.Repo.ListarQuadrosPorCorretor(userID)
	if err != nil {
		http.Error(w, "Erro ao listar quadros", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(quadros)
}

// POST /quadros
func (h *Handler) CriarQuadro(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioDoContexto(r.Context())

	var in QuadroDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.Nome == "" {
		http.Error(w, "Nome do quadro é obrigatório", http.StatusBadRequest)
		return
	}

	q := Quadro{Nome: in.Nome, CorretorID: userID}
	if err := h.Repo.SalvarQuadro(&q); err != nil {
		http.Error(w, "Erro ao criar quadro", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(q)
}

// DELETE /quadros/{id}
func (h *Handler) DeletarQuadro(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if q := h.quadroComAcesso(w, r, uint(id)); q == nil {
		return
	}
	if err := h.Repo.DeletarQuadro(uint(id)); err != nil {
		http.Error(w, "Erro ao deletar quadro", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

/* ============================== Tarefas ============================== */

// POST /tarefas
func (h *Handler) CriarTarefa(w http.ResponseWriter, r *http.Request) {
	var in TarefaDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.QuadroID == 0 || in.Titulo == "" {
		http.Error(w, "Quadro e título são obrigatórios", http.StatusBadRequest)
		return
	}
	if in.Coluna == "" {
		in.Coluna = ColunaAFazer
	}
	if !ColunaValida(in.Coluna) {
		http.Error(w, "Coluna inválida. Use 'afazer', 'fazendo' ou 'feito'.", http.StatusBadRequest)
		return
	}
	if q := h.quadroComAcesso(w, r, in.QuadroID); q == nil {
		return
	}

	posicao, err := h.Repo.ProximaPosicao(in.QuadroID, in.Coluna)
	if err != nil {
		http.Error(w, "Erro ao posicionar tarefa", http.StatusInternalServerError)
		return
	}

	t := Tarefa{
		QuadroID:  in.QuadroID,
		Titulo:    in.Titulo,
		Descricao: in.Descricao,
		Coluna:    in.Coluna,
		Posicao:   posicao,
		Prazo:     in.Prazo,
	}
	if err := h.Repo.SalvarTarefa(&t); err != nil {
		http.Error(w, "Erro ao criar tarefa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(t)
}

// PUT /tarefas/{id}
func (h *Handler) AtualizarTarefa(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.BuscarTarefa(uint(id))
	if err != nil {
		http.Error(w, "Tarefa não encontrada", http.StatusNotFound)
		return
	}
	if q := h.quadroComAcesso(w, r, existente.QuadroID); q == nil {
		return
	}

	var in TarefaDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	existente.Titulo = in.Titulo
	existente.Descricao = in.Descricao
	existente.Prazo = in.Prazo

	if err := h.Repo.SalvarTarefa(existente); err != nil {
		http.Error(w, "Erro ao atualizar tarefa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// PATCH /tarefas/{id}/mover
func (h *Handler) MoverTarefa(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.BuscarTarefa(uint(id))
	if err != nil {
		http.Error(w, "Tarefa não encontrada", http.StatusNotFound)
		return
	}
	if q := h.quadroComAcesso(w, r, existente.QuadroID); q == nil {
		return
	}

	var in MoverDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if !ColunaValida(in.Coluna) {
		http.Error(w, "Coluna inválida. Use 'afazer', 'fazendo' ou 'feito'.", http.StatusBadRequest)
		return
	}
	if in.Posicao < 0 {
		in.Posicao = 0
	}

	movida, err := h.Repo.Mover(uint(id), in.Coluna, in.Posicao)
	if err != nil {
		http.Error(w, "Erro ao mover tarefa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(movida)
}

// DELETE /tarefas/{id}
func (h *Handler) DeletarTarefa(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.BuscarTarefa(uint(id))
	if err != nil {
		http.Error(w, "Tarefa não encontrada", http.StatusNotFound)
		return
	}
	if q := h.quadroComAcesso(w, r, existente.QuadroID); q == nil {
		return
	}

	if err := h.Repo.DeletarTarefa(uint(id)); err != nil {
		http.Error(w, "Erro ao deletar tarefa", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
