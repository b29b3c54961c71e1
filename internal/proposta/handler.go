package proposta

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/VivazImoveis/api-vendas/internal/auth"
	"github.com/VivazImoveis/api-vendas/internal/fluxopagamento"
	"github.com/VivazImoveis/api-vendas/internal/moeda"
	"github.com/VivazImoveis/api-vendas/internal/notificacao"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo      *Repository
	MoedaRepo *moeda.Repository
}

func NewHandler(repo *Repository, moedaRepo *moeda.Repository) *Handler {
	return &Handler{Repo: repo, MoedaRepo: moedaRepo}
}

/* ============================== Utilidades ============================== */

// fluxoTipado decodifica o blob persistido na forma que o motor entende.
func fluxoTipado(raw map[string]any, valorImovel float64, m moeda.Moeda) (fluxopagamento.FluxoPagamento, error) {
	var f fluxopagamento.FluxoPagamento
	if raw != nil {
		b, err := json.Marshal(raw)
		if err != nil {
			return f, err
		}
		if err := json.Unmarshal(b, &f); err != nil {
			return f, err
		}
	}
	f.ValorImovel = valorImovel
	f.Moeda = fluxopagamento.Moeda{Codigo: m.Codigo, Simbolo: m.Simbolo, Taxa: m.Taxa, Nome: m.Nome}
	return f, nil
}

// revalidar recalcula o sinal de validade da proposta a partir do fluxo.
func revalidar(p *Proposta) {
	fluxo, err := fluxoTipado(p.Fluxo, p.ValorImovel, p.Moeda)
	if err != nil {
		p.Valida = false
		return
	}
	p.Valida = fluxopagamento.ValidarProposta(fluxopagamento.DadosProposta{
		NomeCliente: p.NomeCliente,
		ValorImovel: p.ValorImovel,
		Fluxo:       fluxo,
	})
}

func (h *Handler) buscarComAcesso(w http.ResponseWriter, r *http.Request) *Proposta {
	userID, _ := auth.UsuarioDoContexto(r.Context())
	isAdmin := auth.IsAdminDoContexto(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return nil
	}

	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Proposta não encontrada", http.StatusNotFound)
		return nil
	}
	if !isAdmin && p.CorretorID != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return nil
	}
	return p
}

/* ============================== Endpoints ============================== */

// POST /propostas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioDoContexto(r.Context())

	var in PropostaDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	p := Proposta{
		NomeCliente:           in.NomeCliente,
		Empreendimento:        in.Empreendimento,
		Unidade:               in.Unidade,
		ValorImovel:           in.ValorImovel,
		MoedaID:               in.MoedaID,
		Fluxo:                 fluxopagamento.MigrarPropostaLegada(in.Fluxo),
		TokenCompartilhamento: uuid.NewString(),
		CorretorID:            userID,
	}

	if p.MoedaID != 0 {
		if m, err := h.MoedaRepo.BuscarPorID(p.MoedaID); err == nil {
			p.Moeda = *m
		}
	}
	revalidar(&p)

	if err := h.Repo.Criar(&p); err != nil {
		http.Error(w, "Erro ao criar proposta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// GET /propostas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioDoContexto(r.Context())
	isAdmin := auth.IsAdminDoContexto(r.Context())

	var (
		propostas []Proposta
		err       error
	)
	if isAdmin {
		propostas, err = h.Repo.ListarTodas()
	} else {
		propostas, err = h.Repo.ListarPorCorretor(userID)
	}
	if err != nil {
		http.Error(w, "Erro ao listar propostas", http.StatusInternalServerError)
		return
	}

	for i := range propostas {
		propostas[i].Fluxo = fluxopagamento.MigrarPropostaLegada(propostas[i].Fluxo)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(propostas)
}

// GET /propostas/{id}
// Registros gravados antes dos campos novos passam pela migração na leitura.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	p := h.buscarComAcesso(w, r)
	if p == nil {
		return
	}

	p.Fluxo = fluxopagamento.MigrarPropostaLegada(p.Fluxo)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// GET /propostas/compartilhada/{token} (pública, sem autenticação)
func (h *Handler) BuscarPorToken(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	p, err := h.Repo.BuscarPorToken(token)
	if err != nil {
		http.Error(w, "Proposta não encontrada", http.StatusNotFound)
		return
	}
	p.Fluxo = fluxopagamento.MigrarPropostaLegada(p.Fluxo)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// PUT /propostas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	p := h.buscarComAcesso(w, r)
	if p == nil {
		return
	}

	var in PropostaDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	p.NomeCliente = in.NomeCliente
	p.Empreendimento = in.Empreendimento
	p.Unidade = in.Unidade
	p.ValorImovel = in.ValorImovel
	if in.MoedaID != 0 && in.MoedaID != p.MoedaID {
		m, err := h.MoedaRepo.BuscarPorID(in.MoedaID)
		if err != nil {
			http.Error(w, "Moeda não encontrada", http.StatusBadRequest)
			return
		}
		p.MoedaID = in.MoedaID
		p.Moeda = *m
	}
	p.Fluxo = fluxopagamento.MigrarPropostaLegada(in.Fluxo)
	revalidar(p)

	if err := h.Repo.Atualizar(p); err != nil {
		http.Error(w, "Erro ao atualizar proposta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// POST /propostas/{id}/submeter
// Única verificação estrita: proposta inválida não vira "Enviada".
func (h *Handler) Submeter(w http.ResponseWriter, r *http.Request) {
	p := h.buscarComAcesso(w, r)
	if p == nil {
		return
	}

	p.Fluxo = fluxopagamento.MigrarPropostaLegada(p.Fluxo)
	revalidar(p)
	if !p.Valida {
		http.Error(w, "Proposta incompleta: confira valor do imóvel, cliente e entrada", http.StatusUnprocessableEntity)
		return
	}

	p.Status = "Enviada"
	if err := h.Repo.Atualizar(p); err != nil {
		http.Error(w, "Erro ao submeter proposta", http.StatusInternalServerError)
		return
	}

	notificacao.EnviarAlertaProposta(p.NomeCliente, p.Empreendimento)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// GET /propostas/{id}/cronograma?moeda=USD
// O cronograma é calculado em moeda local; o parâmetro moeda só muda a
// exibição, nunca o que está gravado.
func (h *Handler) Cronograma(w http.ResponseWriter, r *http.Request) {
	p := h.buscarComAcesso(w, r)
	if p == nil {
		return
	}

	p.Fluxo = fluxopagamento.MigrarPropostaLegada(p.Fluxo)
	fluxo, err := fluxoTipado(p.Fluxo, p.ValorImovel, p.Moeda)
	if err != nil {
		http.Error(w, "Fluxo de pagamento corrompido", http.StatusInternalServerError)
		return
	}

	cron := fluxopagamento.GerarCronograma(fluxo)

	exibicao := fluxopagamento.Moeda{Codigo: "BRL", Simbolo: "R$", Taxa: 1, Nome: "Real Brasileiro"}
	if codigo := r.URL.Query().Get("moeda"); codigo != "" && codigo != "BRL" {
		m, err := h.MoedaRepo.BuscarPorCodigo(codigo)
		if err != nil {
			http.Error(w, "Moeda de exibição não encontrada", http.StatusBadRequest)
			return
		}
		exibicao = fluxopagamento.Moeda{Codigo: m.Codigo, Simbolo: m.Simbolo, Taxa: m.Taxa, Nome: m.Nome}
		for i := range cron {
			cron[i].Valor = fluxopagamento.ConverterParaMoeda(cron[i].Valor, exibicao)
		}
	}

	resp := CronogramaDTO{
		Moeda:    exibicao.Codigo,
		Simbolo:  exibicao.Simbolo,
		Parcelas: cron,
		Total:    fluxopagamento.TotalCronograma(cron),
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// DELETE /propostas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	p := h.buscarComAcesso(w, r)
	if p == nil {
		return
	}

	if err := h.Repo.DeletarPorID(p.ID); err != nil {
		http.Error(w, "Erro ao deletar proposta", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
