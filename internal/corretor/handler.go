package corretor

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/VivazImoveis/api-vendas/internal/auth"
	"github.com/VivazImoveis/api-vendas/internal/ratelimit"
	"github.com/VivazImoveis/api-vendas/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB, repository e o guard de tentativas
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Guard      *ratelimit.Guard
	validate   *validator.Validate
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB, guard *ratelimit.Guard) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Guard:      guard,
		validate:   validator.New(),
	}
}

// Login valida credenciais, emite access token e seta refresh em cookie.
// Protegido pelo guard de tentativas (identificador = login em minúsculas).
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "login e password são obrigatórios", http.StatusBadRequest)
		return
	}

	identificador := strings.ToLower(strings.TrimSpace(req.Login))
	if decisao := h.Guard.Verificar(r.Context(), identificador, ratelimit.AcaoLogin); !decisao.Allowed {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(decisao)
		return
	}

	user, err := h.Repository.BuscarPorEmailOuCRECI(h.DB, identificador)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.VerificarSenha(user.Senha, req.Password) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	access, err := auth.IssueTokensOnLogin(h.DB, w, user.ID, user.IsAdmin)
	if err != nil {
		http.Error(w, "erro ao gerar tokens", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"access_token":          access,
		"token_type":            "Bearer",
		"expires_in":            int(auth.AccessTTL.Seconds()),
		"precisaRedefinirSenha": user.PrecisaRedefinirSenha,
	})
}

// CriarCorretor cadastra novo corretor (livre de autenticação, guardado
// pelo teto de cadastros por janela)
func (h *Handler) CriarCorretor(w http.ResponseWriter, r *http.Request) {
	var req createCorretorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "dados de cadastro inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	identificador := strings.ToLower(strings.TrimSpace(req.Email))
	if decisao := h.Guard.Verificar(r.Context(), identificador, ratelimit.AcaoSignup); !decisao.Allowed {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(decisao)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	c := Corretor{
		Nome:      req.Nome,
		Sobrenome: req.Sobrenome,
		CRECI:     req.CRECI,
		Email:     identificador,
		Telefone:  req.Telefone,
		Foto:      req.Foto,
		Senha:     hash,
	}

	if err := h.Repository.Salvar(h.DB, &c); err != nil {
		http.Error(w, "erro ao salvar corretor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// ListarCorretores retorna todos ou apenas o próprio registro
func (h *Handler) ListarCorretores(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioDoContexto(r.Context())
	isAdmin := auth.IsAdminDoContexto(r.Context())

	w.Header().Set("Content-Type", "application/json")

	if isAdmin {
		corretores, err := h.Repository.ListarTodos(h.DB)
		if err != nil {
			http.Error(w, "erro ao listar corretores", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(corretores)
		return
	}

	// não-admin vê apenas o próprio
	obj, err := h.Repository.BuscarPorID(h.DB, userID)
	if err != nil {
		http.Error(w, "corretor não encontrado", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode([]Corretor{*obj})
}

// BuscarPorID retorna um corretor pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioDoContexto(r.Context())
	isAdmin := auth.IsAdminDoContexto(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "corretor não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(obj)
}

// AtualizarCorretor altera dados de um corretor existente
func (h *Handler) AtualizarCorretor(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioDoContexto(r.Context())
	isAdmin := auth.IsAdminDoContexto(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	var dados Corretor
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		http.Error(w, "erro ao atualizar corretor", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("corretor atualizado com sucesso"))
}

// DeletarCorretor remove um corretor
func (h *Handler) DeletarCorretor(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioDoContexto(r.Context())
	isAdmin := auth.IsAdminDoContexto(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir corretor", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("corretor excluído com sucesso"))
}

// GerarSenhaTemporaria reseta a senha de um corretor para uma temporária
// (admin only); o corretor é obrigado a redefinir no próximo login
func (h *Handler) GerarSenhaTemporaria(w http.ResponseWriter, r *http.Request) {
	if !auth.IsAdminDoContexto(r.Context()) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "corretor não encontrado", http.StatusNotFound)
		return
	}

	temporaria, err := utils.GerarSenhaTemporaria()
	if err != nil {
		http.Error(w, "erro ao gerar senha temporária", http.StatusInternalServerError)
		return
	}
	hash, err := utils.HashSenha(temporaria)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	obj.Senha = hash
	obj.PrecisaRedefinirSenha = true
	if err := h.Repository.Salvar(h.DB, obj); err != nil {
		http.Error(w, "erro ao salvar corretor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"senhaTemporaria": temporaria})
}

// Me retorna o usuário logado
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioDoContexto(r.Context())

	var c Corretor
	if err := h.DB.First(&c, userID).Error; err != nil {
		http.Error(w, "corretor não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}
