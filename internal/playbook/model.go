package playbook

import "gorm.io/gorm"

// CategoriaMensagem agrupa as mensagens do playbook de vendas.
type CategoriaMensagem struct {
	gorm.Model
	Nome      string     `gorm:"size:100;not null" json:"nome"`
	Ordem     int        `gorm:"not null;default:0" json:"ordem"`
	Mensagens []Mensagem `gorm:"foreignKey:CategoriaID;constraint:OnDelete:CASCADE" json:"mensagens"`
}

// Mensagem é um texto pronto do playbook que o corretor copia e cola
// na conversa com o cliente. Copias conta quantas vezes foi usada.
type Mensagem struct {
	gorm.Model
	CategoriaID uint     `gorm:"not null;index" json:"categoriaId"`
	Titulo      string   `gorm:"size:255;not null" json:"titulo"`
	Conteudo    string   `gorm:"type:text;not null" json:"conteudo"`
	Etiquetas   []string `gorm:"type:jsonb;serializer:json" json:"etiquetas"`
	Copias      int      `gorm:"not null;default:0" json:"copias"`
}

// Migrate cria as tabelas no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&CategoriaMensagem{}, &Mensagem{})
}
