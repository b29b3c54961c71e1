package tarefa

import (
	"time"

	"gorm.io/gorm"
)

// Colunas do quadro kanban.
const (
	ColunaAFazer  = "afazer"
	ColunaFazendo = "fazendo"
	ColunaFeito   = "feito"
)

// ColunaValida reconhece os nomes de coluna aceitos.
func ColunaValida(c string) bool {
	return c == ColunaAFazer || c == ColunaFazendo || c == ColunaFeito
}

// Quadro é um quadro kanban de um corretor.
type Quadro struct {
	gorm.Model
	Nome       string   `gorm:"size:255;not null" json:"nome"`
	CorretorID uint     `gorm:"not null;index" json:"corretorId"`
	Tarefas    []Tarefa `gorm:"foreignKey:QuadroID;constraint:OnDelete:CASCADE" json:"tarefas"`
}

// Tarefa é um cartão do quadro. Posicao ordena dentro da coluna.
type Tarefa struct {
	gorm.Model
	QuadroID  uint       `gorm:"not null;index" json:"quadroId"`
	Titulo    string     `gorm:"size:255;not null" json:"titulo"`
	Descricao string     `gorm:"type:text" json:"descricao"`
	Coluna    string     `gorm:"size:20;not null;default:'afazer';index" json:"coluna"`
	Posicao   int        `gorm:"not null;default:0" json:"posicao"`
	Prazo     *time.Time `json:"prazo,omitempty"`
}

// Migrate cria as tabelas no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Quadro{}, &Tarefa{})
}
