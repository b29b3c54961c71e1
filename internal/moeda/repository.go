// internal/moeda/repository.go
package moeda

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de Moedas.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) ListarTodas() ([]Moeda, error) {
	var moedas []Moeda
	err := r.DB.Order("codigo ASC").Find(&moedas).Error
	return moedas, err
}

func (r *Repository) BuscarPorID(id uint) (*Moeda, error) {
	var m Moeda
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) BuscarPorCodigo(codigo string) (*Moeda, error) {
	var m Moeda
	if err := r.DB.Where("codigo = ?", codigo).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Salvar(m *Moeda) error {
	return r.DB.Save(m).Error
}

// DeletarPorID apaga a moeda; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeletarPorID(id uint) error {
	res := r.DB.Delete(&Moeda{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
