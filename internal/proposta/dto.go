package proposta

import "github.com/VivazImoveis/api-vendas/internal/fluxopagamento"

// DTO usado no POST/PUT de propostas. Durante a edição tudo é aceito;
// a validação estrita acontece só na submissão.
type PropostaDTO struct {
	NomeCliente    string         `json:"nomeCliente"`
	Empreendimento string         `json:"empreendimento"`
	Unidade        string         `json:"unidade"`
	ValorImovel    float64        `json:"valorImovel"`
	MoedaID        uint           `json:"moedaId"`
	Fluxo          map[string]any `json:"fluxo"`
}

// Resposta do GET /propostas/{id}/cronograma
type CronogramaDTO struct {
	Moeda    string                   `json:"moeda"`
	Simbolo  string                   `json:"simbolo"`
	Parcelas []fluxopagamento.Parcela `json:"parcelas"`
	Total    float64                  `json:"total"`
}
