package academia

import (
	"encoding/json"
	"net/http"
	"strconv"

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
type CursoDTO struct {
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
	Capa      string `json:"capa"`
	Ordem     int    `json:"ordem"`
}

type AulaDTO struct {
	CursoID         uint   `json:"cursoId"`
	Titulo          string `json:"titulo"`
	VideoURL        string `json:"videoUrl"`
	DuracaoSegundos int    `json:"duracaoSegundos"`
	Ordem           int    `json:"ordem"`
}

type ProgressoDTO struct {
	SegundosAssistidos int  `json:"segundosAssistidos"`
	Concluida          bool `json:"concluida"`
}

type ResumoProgressoDTO struct {
	CursoID         uint    `json:"cursoId"`
	TotalAulas      int     `json:"totalAulas"`
	AulasConcluidas int     `json:"aulasConcluidas"`
	Percentual      float64 `json:"percentual"`
}

/* ============================== Cursos ============================== */

// GET /academia/cursos
func (h *Handler) ListarCursos(w http.ResponseWriter, r *http.Request) {
	cursos, err := h.Repo.ListarCursos()
	if err != nil {
		http.Error(w, "Erro ao listar cursos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(cursos)
}

// POST /academia/cursos (admin)
func (h *Handler) CriarCurso(w http.ResponseWriter, r *http.Request) {
	var in CursoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.Titulo == "" {
		http.Error(w, "Título do curso é obrigatório", http.StatusBadRequest)
		return
	}

	c := Curso{Titulo: in.Titulo, Descricao: in.Descricao, Capa: in.Capa, Ordem: in.Ordem}
	if err := h.Repo.SalvarCurso(&c); err != nil {
		http.Error(w, "Erro ao criar curso", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// PUT /academia/cursos/{id} (admin)
func (h *Handler) AtualizarCurso(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.BuscarCurso(uint(id))
	if err != nil {
		http.Error(w, "Curso não encontrado", http.StatusNotFound)
		return
	}

	var in CursoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	existente.Titulo = in.Titulo
	existente.Descricao = in.Descricao
	existente.Capa = in.Capa
	existente.Ordem = in.Ordem

	if err := h.Repo.SalvarCurso(existente); err != nil {
		http.Error(w, "Erro ao atualizar curso", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// DELETE /academia/cursos/{id} (admin)
func (h *Handler) DeletarCurso(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeletarCurso(uint(id)); err != nil {
		http.Error(w, "Curso não encontrado", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

/* ============================== Aulas ============================== */

// POST /academia/aulas (admin)
func (h *Handler) CriarAula(w http.ResponseWriter, r *http.Request) {
	var in AulaDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.CursoID == 0 || in.Titulo == "" || in.VideoURL == "" {
		http.Error(w, "Curso, título e vídeo são obrigatórios", http.StatusBadRequest)
		return
	}

	a := Aula{
		CursoID:         in.CursoID,
		Titulo:          in.Titulo,
		VideoURL:        in.VideoURL,
		DuracaoSegundos: in.DuracaoSegundos,
		Ordem:           in.Ordem,
	}
	if err := h.Repo.SalvarAula(&a); err != nil {
		http.Error(w, "Erro ao criar aula", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}

// DELETE /academia/aulas/{id} (admin)
func (h *Handler) DeletarAula(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeletarAula(uint(id)); err != nil {
		http.Error(w, "Aula não encontrada", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

/* ============================== Progresso ============================== */

// PUT /academia/aulas/{id}/progresso
func (h *Handler) SalvarProgresso(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioDoContexto(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da aula inválido", http.StatusBadRequest)
		return
	}

	aula, err := h.Repo.BuscarAula(uint(id))
	if err != nil {
		http.Error(w, "Aula não encontrada", http.StatusNotFound)
		return
	}

	var in ProgressoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	// Assistiu até o fim conta como concluída, mesmo sem o flag
	if aula.DuracaoSegundos > 0 && in.SegundosAssistidos >= aula.DuracaoSegundos {
		in.Concluida = true
	}

	p := ProgressoAula{
		CorretorID:         userID,
		AulaID:             aula.ID,
		SegundosAssistidos: in.SegundosAssistidos,
		Concluida:          in.Concluida,
	}
	if err := h.Repo.SalvarProgresso(&p); err != nil {
		http.Error(w, "Erro ao salvar progresso", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"message":"Progresso salvo"}`))
}

// GET /academia/cursos/{id}/progresso
func (h *Handler) ProgressoDoCurso(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioDoContexto(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	curso, err := h.Repo.BuscarCurso(uint(id))
	if err != nil {
		http.Error(w, "Curso não encontrado", http.StatusNotFound)
		return
	}

	aulaIDs := make([]uint, 0, len(curso.Aulas))
	for _, a := range curso.Aulas {
		aulaIDs = append(aulaIDs, a.ID)
	}

	progresso, err := h.Repo.ProgressoDoCorretor(userID, aulaIDs)
	if err != nil {
		http.Error(w, "Erro ao buscar progresso", http.StatusInternalServerError)
		return
	}

	concluidas := 0
	for _, p := range progresso {
		if p.Concluida {
			concluidas++
		}
	}

	resumo := ResumoProgressoDTO{
		CursoID:         curso.ID,
		TotalAulas:      len(curso.Aulas),
		AulasConcluidas: concluidas,
	}
	if resumo.TotalAulas > 0 {
		resumo.Percentual = float64(concluidas) / float64(resumo.TotalAulas) * 100
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resumo)
}
