package proposta

import (
	"time"

	"github.com/VivazImoveis/api-vendas/internal/moeda"
	"gorm.io/gorm"
)

// Proposta é uma proposta de pagamento de um imóvel montada por um
// corretor. O fluxo de pagamento é persistido como blob JSONB opaco:
// a forma dele evoluiu com o tempo e registros antigos passam por
// migração na leitura.
type Proposta struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	NomeCliente    string `gorm:"size:255;not null" json:"nomeCliente"`
	Empreendimento string `gorm:"size:255" json:"empreendimento"`
	Unidade        string `gorm:"size:50" json:"unidade"`

	ValorImovel float64 `gorm:"not null;default:0" json:"valorImovel"`

	MoedaID uint        `gorm:"index" json:"moedaId"`
	Moeda   moeda.Moeda `gorm:"foreignKey:MoedaID" json:"moeda"`

	// Fluxo de pagamento completo em JSONB
	Fluxo map[string]any `gorm:"type:jsonb;serializer:json" json:"fluxo"`

	Status string `gorm:"size:50;not null;default:'Rascunho';index" json:"status"`
	Valida bool   `gorm:"not null;default:false" json:"valida"`

	// Link público de compartilhamento com o cliente
	TokenCompartilhamento string `gorm:"size:64;uniqueIndex" json:"tokenCompartilhamento"`

	CorretorID uint `gorm:"not null;index" json:"corretorId"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Proposta{})
}
