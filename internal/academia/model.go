package academia

import (
	"time"

	"gorm.io/gorm"
)

// Curso é um treinamento da academia de vendas.
type Curso struct {
	gorm.Model
	Titulo    string `gorm:"size:255;not null" json:"titulo"`
	Descricao string `gorm:"type:text" json:"descricao"`
	Capa      string `gorm:"size:255" json:"capa"`
	Ordem     int    `gorm:"not null;default:0" json:"ordem"`
	Aulas     []Aula `gorm:"foreignKey:CursoID;constraint:OnDelete:CASCADE" json:"aulas"`
}

// Aula é uma videoaula dentro de um curso.
type Aula struct {
	gorm.Model
	CursoID         uint   `gorm:"not null;index" json:"cursoId"`
	Titulo          string `gorm:"size:255;not null" json:"titulo"`
	VideoURL        string `gorm:"size:512;not null" json:"videoUrl"`
	DuracaoSegundos int    `gorm:"not null;default:0" json:"duracaoSegundos"`
	Ordem           int    `gorm:"not null;default:0" json:"ordem"`
}

// ProgressoAula marca até onde um corretor assistiu cada aula.
// Um registro por (corretor, aula), atualizado a cada pausa do player.
type ProgressoAula struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	CorretorID         uint      `gorm:"not null;uniqueIndex:idx_progresso_corretor_aula" json:"corretorId"`
	AulaID             uint      `gorm:"not null;uniqueIndex:idx_progresso_corretor_aula" json:"aulaId"`
	SegundosAssistidos int       `gorm:"not null;default:0" json:"segundosAssistidos"`
	Concluida          bool      `gorm:"not null;default:false" json:"concluida"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// Migrate cria as tabelas no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Curso{}, &Aula{}, &ProgressoAula{})
}
