package enquete

import (
	"time"

	"gorm.io/gorm"
)

// Status de uma enquete.
const (
	StatusRascunho  = "rascunho"
	StatusAberta    = "aberta"
	StatusEncerrada = "encerrada"
)

// Enquete é uma votação interna do time de vendas.
type Enquete struct {
	gorm.Model
	Pergunta  string         `gorm:"size:255;not null" json:"pergunta"`
	Status    string         `gorm:"size:20;not null;default:'rascunho';index" json:"status"`
	CriadorID uint           `gorm:"not null;index" json:"criadorId"`
	Opcoes    []OpcaoEnquete `gorm:"foreignKey:EnqueteID;constraint:OnDelete:CASCADE" json:"opcoes"`
}

// OpcaoEnquete é uma alternativa de resposta.
type OpcaoEnquete struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	EnqueteID uint   `gorm:"not null;index" json:"enqueteId"`
	Texto     string `gorm:"size:255;not null" json:"texto"`
}

// VotoEnquete registra um voto. Um token vota uma única vez por enquete.
type VotoEnquete struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EnqueteID    uint      `gorm:"not null;uniqueIndex:idx_voto_enquete_token" json:"enqueteId"`
	OpcaoID      uint      `gorm:"not null;index" json:"opcaoId"`
	TokenEleitor string    `gorm:"size:64;not null;uniqueIndex:idx_voto_enquete_token" json:"tokenEleitor"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Migrate cria as tabelas no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Enquete{}, &OpcaoEnquete{}, &VotoEnquete{})
}
