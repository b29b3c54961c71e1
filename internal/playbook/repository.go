package playbook

import "gorm.io/gorm"

// Repository encapsula o acesso a dados do playbook.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) ListarCategorias() ([]CategoriaMensagem, error) {
	var categorias []CategoriaMensagem
	err := r.DB.Preload("Mensagens").Order("ordem ASC, nome ASC").Find(&categorias).Error
	return categorias, err
}

func (r *Repository) SalvarCategoria(c *CategoriaMensagem) error {
	return r.DB.Save(c).Error
}

func (r *Repository) DeletarCategoria(id uint) error {
	res := r.DB.Delete(&CategoriaMensagem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) BuscarMensagem(id uint) (*Mensagem, error) {
	var m Mensagem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) ListarMensagensPorCategoria(categoriaID uint) ([]Mensagem, error) {
	var mensagens []Mensagem
	err := r.DB.Where("categoria_id = ?", categoriaID).Order("titulo ASC").Find(&mensagens).Error
	return mensagens, err
}

func (r *Repository) SalvarMensagem(m *Mensagem) error {
	return r.DB.Save(m).Error
}

func (r *Repository) DeletarMensagem(id uint) error {
	res := r.DB.Delete(&Mensagem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementarCopias soma 1 ao contador de uso da mensagem.
func (r *Repository) IncrementarCopias(id uint) error {
	return r.DB.Model(&Mensagem{}).
		Where("id = ?", id).
		Update("copias", gorm.Expr("copias + 1")).Error
}
