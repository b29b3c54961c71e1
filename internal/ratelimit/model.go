// internal/ratelimit/model.go
package ratelimit

import (
	"time"

	"gorm.io/gorm"
)

// TentativaAcesso registra uma tentativa permitida de login ou cadastro.
// Nunca é atualizada; tentativas fora da janela simplesmente deixam de
// contar. A limpeza de registros velhos é de um job externo, não daqui.
type TentativaAcesso struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Identificador string    `gorm:"size:255;not null;index:idx_tentativa_busca,priority:1" json:"identificador"`
	Acao          string    `gorm:"size:50;not null;index:idx_tentativa_busca,priority:2" json:"acao"`
	CreatedAt     time.Time `gorm:"not null;index:idx_tentativa_busca,priority:3" json:"createdAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&TentativaAcesso{})
}
