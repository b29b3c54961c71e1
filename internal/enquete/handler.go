package enquete

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/VivazImoveis/api-vendas/internal/auth"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type criarEnqueteDTO struct {
	Pergunta string   `json:"pergunta"`
	Opcoes   []string `json:"opcoes"`
}

type votoDTO struct {
	OpcaoID      uint   `json:"opcaoId"`
	TokenEleitor string `json:"tokenEleitor"`
}

type resultadoOpcaoDTO struct {
	OpcaoID uint   `json:"opcaoId"`
	Texto   string `json:"texto"`
	Votos   int64  `json:"votos"`
}

type resultadoDTO struct {
	EnqueteID  uint                `json:"enqueteId"`
	Pergunta   string              `json:"pergunta"`
	Status     string              `json:"status"`
	TotalVotos int64               `json:"totalVotos"`
	Opcoes     []resultadoOpcaoDTO `json:"opcoes"`
}

func (h *Handler) buscar(w http.ResponseWriter, r *http.Request) *Enquete {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return nil
	}
	e, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Enquete não encontrada", http.StatusNotFound)
		} else {
			http.Error(w, "Erro ao buscar enquete", http.StatusInternalServerError)
		}
		return nil
	}
	return e
}

func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto criarEnqueteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	dto.Pergunta = strings.TrimSpace(dto.Pergunta)
	if dto.Pergunta == "" || len(dto.Opcoes) < 2 {
		http.Error(w, "Informe a pergunta e ao menos duas opções", http.StatusBadRequest)
		return
	}

	criadorID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	e := Enquete{Pergunta: dto.Pergunta, Status: StatusRascunho, CriadorID: criadorID}
	for _, t := range dto.Opcoes {
		t = strings.TrimSpace(t)
		if t == "" {
			http.Error(w, "Opção vazia não é permitida", http.StatusBadRequest)
			return
		}
		e.Opcoes = append(e.Opcoes, OpcaoEnquete{Texto: t})
	}

	if err := h.Repo.Criar(&e); err != nil {
		http.Error(w, "Erro ao criar enquete", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(e)
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	enquetes, err := h.Repo.Listar()
	if err != nil {
		http.Error(w, "Erro ao listar enquetes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(enquetes)
}

func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	e := h.buscar(w, r)
	if e == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(e)
}

// Atualizar só é permitido em rascunho, para não invalidar votos já dados.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	e := h.buscar(w, r)
	if e == nil {
		return
	}
	if e.Status != StatusRascunho {
		http.Error(w, "Enquete já aberta não pode ser editada", http.StatusConflict)
		return
	}

	var dto criarEnqueteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if p := strings.TrimSpace(dto.Pergunta); p != "" {
		e.Pergunta = p
	}
	if err := h.Repo.Atualizar(e); err != nil {
		http.Error(w, "Erro ao atualizar enquete", http.StatusInternalServerError)
		return
	}
	if len(dto.Opcoes) >= 2 {
		if err := h.Repo.SubstituirOpcoes(e.ID, dto.Opcoes); err != nil {
			http.Error(w, "Erro ao atualizar opções", http.StatusInternalServerError)
			return
		}
	}

	atualizada, err := h.Repo.BuscarPorID(e.ID)
	if err != nil {
		http.Error(w, "Erro ao buscar enquete", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(atualizada)
}

func (h *Handler) Abrir(w http.ResponseWriter, r *http.Request) {
	h.mudarStatus(w, r, StatusRascunho, StatusAberta, "Apenas enquetes em rascunho podem ser abertas")
}

func (h *Handler) Encerrar(w http.ResponseWriter, r *http.Request) {
	h.mudarStatus(w, r, StatusAberta, StatusEncerrada, "Apenas enquetes abertas podem ser encerradas")
}

func (h *Handler) mudarStatus(w http.ResponseWriter, r *http.Request, de, para, msgConflito string) {
	e := h.buscar(w, r)
	if e == nil {
		return
	}
	if e.Status != de {
		http.Error(w, msgConflito, http.StatusConflict)
		return
	}
	e.Status = para
	if err := h.Repo.Atualizar(e); err != nil {
		http.Error(w, "Erro ao atualizar enquete", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(e)
}

// Votar aceita um token de eleitor opcional. Sem token, um novo é gerado e
// devolvido na resposta para o cliente guardar.
func (h *Handler) Votar(w http.ResponseWriter, r *http.Request) {
	e := h.buscar(w, r)
	if e == nil {
		return
	}
	if e.Status != StatusAberta {
		http.Error(w, "Enquete não está aberta para votos", http.StatusConflict)
		return
	}

	var dto votoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	opcaoValida := false
	for _, o := range e.Opcoes {
		if o.ID == dto.OpcaoID {
			opcaoValida = true
			break
		}
	}
	if !opcaoValida {
		http.Error(w, "Opção não pertence a esta enquete", http.StatusBadRequest)
		return
	}

	token := strings.TrimSpace(dto.TokenEleitor)
	if token == "" {
		token = uuid.NewString()
	} else {
		votou, err := h.Repo.JaVotou(e.ID, token)
		if err != nil {
			http.Error(w, "Erro ao verificar voto", http.StatusInternalServerError)
			return
		}
		if votou {
			http.Error(w, "Este token já votou nesta enquete", http.StatusConflict)
			return
		}
	}

	voto := VotoEnquete{EnqueteID: e.ID, OpcaoID: dto.OpcaoID, TokenEleitor: token}
	if err := h.Repo.RegistrarVoto(&voto); err != nil {
		status, msg := statusDoErroDeVoto(err)
		http.Error(w, msg, status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"enqueteId":    e.ID,
		"opcaoId":      dto.OpcaoID,
		"tokenEleitor": token,
	})
}

// statusDoErroDeVoto traduz a falha do insert: o índice único barra voto
// repetido em corrida (dois envios simultâneos do mesmo token) e chega aqui
// como gorm.ErrDuplicatedKey, já que a conexão abre com TranslateError.
func statusDoErroDeVoto(err error) (int, string) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return http.StatusConflict, "Este token já votou nesta enquete"
	}
	return http.StatusInternalServerError, "Erro ao registrar voto"
}

func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	e := h.buscar(w, r)
	if e == nil {
		return
	}
	if err := h.Repo.Deletar(e.ID); err != nil {
		http.Error(w, "Erro ao remover enquete", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Resultados(w http.ResponseWriter, r *http.Request) {
	e := h.buscar(w, r)
	if e == nil {
		return
	}
	contagem, err := h.Repo.ContagemVotos(e.ID)
	if err != nil {
		http.Error(w, "Erro ao apurar votos", http.StatusInternalServerError)
		return
	}

	resultado := resultadoDTO{EnqueteID: e.ID, Pergunta: e.Pergunta, Status: e.Status}
	for _, o := range e.Opcoes {
		votos := contagem[o.ID]
		resultado.TotalVotos += votos
		resultado.Opcoes = append(resultado.Opcoes, resultadoOpcaoDTO{
			OpcaoID: o.ID,
			Texto:   o.Texto,
			Votos:   votos,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resultado)
}
