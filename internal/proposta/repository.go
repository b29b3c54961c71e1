package proposta

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de Propostas.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(p *Proposta) error {
	return r.DB.Create(p).Error
}

func (r *Repository) BuscarPorID(id uint) (*Proposta, error) {
	var p Proposta
	if err := r.DB.Preload("Moeda").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) BuscarPorToken(token string) (*Proposta, error) {
	var p Proposta
	if err := r.DB.Preload("Moeda").Where("token_compartilhamento = ?", token).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ListarPorCorretor(corretorID uint) ([]Proposta, error) {
	var propostas []Proposta
	err := r.DB.Preload("Moeda").
		Where("corretor_id = ?", corretorID).
		Order("updated_at DESC").
		Find(&propostas).Error
	return propostas, err
}

func (r *Repository) ListarTodas() ([]Proposta, error) {
	var propostas []Proposta
	err := r.DB.Preload("Moeda").Order("updated_at DESC").Find(&propostas).Error
	return propostas, err
}

func (r *Repository) Atualizar(p *Proposta) error {
	return r.DB.Save(p).Error
}

// DeletarPorID apaga a proposta; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeletarPorID(id uint) error {
	res := r.DB.Delete(&Proposta{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
