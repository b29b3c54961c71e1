// internal/fluxopagamento/model.go
package fluxopagamento

import "time"

// TipoRepresentacao indica qual campo do componente é o autoritativo
// na edição: o percentual sobre o valor do imóvel ou o valor absoluto.
type TipoRepresentacao string

const (
	TipoPercentual TipoRepresentacao = "percentage"
	TipoValor      TipoRepresentacao = "value"
)

// Moeda é a configuração estática de câmbio usada apenas para exibição.
// Taxa = unidades de moeda local por 1 unidade estrangeira; BRL tem Taxa 1.
type Moeda struct {
	Codigo  string  `json:"codigo"`
	Simbolo string  `json:"simbolo"`
	Taxa    float64 `json:"taxa"`
	Nome    string  `json:"nome"`
}

// Componente é uma parte do fluxo de pagamento (entrada, ato, mensais,
// reforços, chaves). Percentual e Valor são mantidos sincronizados a cada
// edição; Tipo marca qual dos dois foi digitado por último.
type Componente struct {
	Tipo               TipoRepresentacao `json:"tipo"`
	Percentual         float64           `json:"percentual"`
	Valor              float64           `json:"valor"`
	QtdParcelas        int               `json:"qtdParcelas"`
	PrimeiroVencimento *time.Time        `json:"primeiroVencimento,omitempty"`
}

// Entrada é o componente de entrada com o sub-componente opcional de Ato
// (pagamento único na assinatura do contrato).
type Entrada struct {
	Componente
	Ato *Componente `json:"ato,omitempty"`
}

// FluxoPagamento é o estado completo de um fluxo de proposta.
// Todos os valores são mantidos na moeda local; a conversão de moeda
// é só de apresentação.
type FluxoPagamento struct {
	ValorImovel      float64     `json:"valorImovel"`
	Moeda            Moeda       `json:"moeda"`
	Entrada          *Entrada    `json:"entrada,omitempty"`
	InicioObra       *Componente `json:"inicioObra,omitempty"`
	Mensais          *Componente `json:"mensais,omitempty"`
	ReforcoSemestral *Componente `json:"reforcoSemestral,omitempty"`
	ReforcoAnual     *Componente `json:"reforcoAnual,omitempty"`
	Chaves           *Componente `json:"chaves,omitempty"`
}

// Parcela é uma linha do cronograma resolvido.
type Parcela struct {
	Descricao  string     `json:"descricao"`
	Numero     int        `json:"numero"`
	Valor      float64    `json:"valor"`
	Vencimento *time.Time `json:"vencimento,omitempty"`
}
