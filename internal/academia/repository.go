package academia

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository encapsula o acesso a dados da academia.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

/* ============================== Cursos e aulas ============================== */

func (r *Repository) ListarCursos() ([]Curso, error) {
	var cursos []Curso
	err := r.DB.Preload("Aulas", func(db *gorm.DB) *gorm.DB {
		return db.Order("aulas.ordem ASC")
	}).Order("ordem ASC, titulo ASC").Find(&cursos).Error
	return cursos, err
}

func (r *Repository) BuscarCurso(id uint) (*Curso, error) {
	var c Curso
	err := r.DB.Preload("Aulas", func(db *gorm.DB) *gorm.DB {
		return db.Order("aulas.ordem ASC")
	}).First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) SalvarCurso(c *Curso) error {
	return r.DB.Save(c).Error
}

func (r *Repository) DeletarCurso(id uint) error {
	res := r.DB.Delete(&Curso{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) BuscarAula(id uint) (*Aula, error) {
	var a Aula
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) SalvarAula(a *Aula) error {
	return r.DB.Save(a).Error
}

func (r *Repository) DeletarAula(id uint) error {
	res := r.DB.Delete(&Aula{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

/* ============================== Progresso ============================== */

// SalvarProgresso faz upsert por (corretor, aula): o player manda o
// ponto atual a cada pausa e o registro só anda para frente.
func (r *Repository) SalvarProgresso(p *ProgressoAula) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "corretor_id"}, {Name: "aula_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"segundos_assistidos": gorm.Expr("GREATEST(progresso_aulas.segundos_assistidos, ?)", p.SegundosAssistidos),
			"concluida":           gorm.Expr("progresso_aulas.concluida OR ?", p.Concluida),
			"updated_at":          gorm.Expr("NOW()"),
		}),
	}).Create(p).Error
}

func (r *Repository) ProgressoDoCorretor(corretorID uint, aulaIDs []uint) ([]ProgressoAula, error) {
	var progresso []ProgressoAula
	if len(aulaIDs) == 0 {
		return progresso, nil
	}
	err := r.DB.Where("corretor_id = ? AND aula_id IN ?", corretorID, aulaIDs).Find(&progresso).Error
	return progresso, err
}
