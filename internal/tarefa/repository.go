package tarefa

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de quadros e tarefas.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) ListarQuadrosPorCorretor(corretorID uint) ([]Quadro, error) {
	var quadros []Quadro
	err := r.DB.Preload("Tarefas", func(db *gorm.DB) *gorm.DB {
		return db.Order("tarefas.coluna ASC, tarefas.posicao ASC")
	}).Where("corretor_id = ?", corretorID).Order("created_at ASC").Find(&quadros).Error
	return quadros, err
}

func (r *Repository) BuscarQuadro(id uint) (*Quadro, error) {
	var q Quadro
	err := r.DB.Preload("Tarefas", func(db *gorm.DB) *gorm.DB {
		return db.Order("tarefas.coluna ASC, tarefas.posicao ASC")
	}).First(&q, id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *Repository) SalvarQuadro(q *Quadro) error {
	return r.DB.Save(q).Error
}

func (r *Repository) DeletarQuadro(id uint) error {
	res := r.DB.Delete(&Quadro{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) BuscarTarefa(id uint) (*Tarefa, error) {
	var t Tarefa
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) SalvarTarefa(t *Tarefa) error {
	return r.DB.Save(t).Error
}

func (r *Repository) DeletarTarefa(id uint) error {
	res := r.DB.Delete(&Tarefa{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ProximaPosicao devolve a próxima posição livre da coluna.
func (r *Repository) ProximaPosicao(quadroID uint, coluna string) (int, error) {
	var max int
	err := r.DB.Model(&Tarefa{}).
		Where("quadro_id = ? AND coluna = ?", quadroID, coluna).
		Select("COALESCE(MAX(posicao), -1) + 1").
		Scan(&max).Error
	return max, err
}

// Mover muda a tarefa de coluna/posição e renumera as duas colunas
// afetadas dentro de uma transação.
func (r *Repository) Mover(tarefaID uint, coluna string, posicao int) (*Tarefa, error) {
	var movida Tarefa

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&movida, tarefaID).Error; err != nil {
			return err
		}
		origem := movida.Coluna
		posicaoOrigem := movida.Posicao

		// abre espaço na coluna de destino
		if err := tx.Model(&Tarefa{}).
			Where("quadro_id = ? AND coluna = ? AND posicao >= ? AND id <> ?", movida.QuadroID, coluna, posicao, movida.ID).
			Update("posicao", gorm.Expr("posicao + 1")).Error; err != nil {
			return err
		}

		movida.Coluna = coluna
		movida.Posicao = posicao
		if err := tx.Save(&movida).Error; err != nil {
			return err
		}

		// fecha o buraco deixado na coluna de origem
		if origem != coluna {
			if err := tx.Model(&Tarefa{}).
				Where("quadro_id = ? AND coluna = ? AND posicao > ?", movida.QuadroID, origem, posicaoOrigem).
				Update("posicao", gorm.Expr("posicao - 1")).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &movida, nil
}
