package reuniao

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Reuniões.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(m *Reuniao) error {
	return r.DB.Create(m).Error
}

func (r *Repository) BuscarPorID(id uint) (*Reuniao, error) {
	var m Reuniao
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// ListarPorCorretor devolve a agenda do corretor, opcionalmente
// recortada por período.
func (r *Repository) ListarPorCorretor(corretorID uint, de, ate *time.Time) ([]Reuniao, error) {
	q := r.DB.Where("corretor_id = ?", corretorID)
	if de != nil {
		q = q.Where("fim >= ?", *de)
	}
	if ate != nil {
		q = q.Where("inicio <= ?", *ate)
	}

	var reunioes []Reuniao
	err := q.Order("inicio ASC").Find(&reunioes).Error
	return reunioes, err
}

// ExisteConflito diz se o corretor já tem reunião cruzando o intervalo.
// ignorarID pula a própria reunião ao reagendar.
func (r *Repository) ExisteConflito(corretorID uint, inicio, fim time.Time, ignorarID uint) (bool, error) {
	var total int64
	err := r.DB.Model(&Reuniao{}).
		Where("corretor_id = ? AND inicio < ? AND fim > ? AND id <> ?", corretorID, fim, inicio, ignorarID).
		Count(&total).Error
	return total > 0, err
}

func (r *Repository) Atualizar(m *Reuniao) error {
	return r.DB.Save(m).Error
}

// DeletarPorID apaga a reunião; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeletarPorID(id uint) error {
	res := r.DB.Delete(&Reuniao{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
