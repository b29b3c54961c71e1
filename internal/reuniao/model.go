package reuniao

import (
	"time"

	"gorm.io/gorm"
)

// Reuniao é um compromisso agendado pelo corretor (visita, assinatura,
// alinhamento com o cliente).
type Reuniao struct {
	gorm.Model
	Titulo string    `gorm:"size:255;not null" json:"titulo"`
	Inicio time.Time `gorm:"not null;index" json:"inicio"`
	Fim    time.Time `gorm:"not null" json:"fim"`
	Local  string    `gorm:"size:255" json:"local"`
	Link   string    `gorm:"size:512" json:"link"`

	// Suporta múltiplos participantes em JSONB
	Participantes []string `gorm:"type:jsonb;serializer:json" json:"participantes"`

	CorretorID uint `gorm:"not null;index" json:"corretorId"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Reuniao{})
}
