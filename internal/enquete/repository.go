package enquete

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(e *Enquete) error {
	return r.DB.Create(e).Error
}

func (r *Repository) Listar() ([]Enquete, error) {
	var enquetes []Enquete
	err := r.DB.Preload("Opcoes").Order("created_at DESC").Find(&enquetes).Error
	return enquetes, err
}

func (r *Repository) BuscarPorID(id uint) (*Enquete, error) {
	var e Enquete
	if err := r.DB.Preload("Opcoes").First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) Atualizar(e *Enquete) error {
	return r.DB.Save(e).Error
}

func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&Enquete{}, id).Error
}

// SubstituirOpcoes apaga as opções atuais e grava as novas.
func (r *Repository) SubstituirOpcoes(enqueteID uint, textos []string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("enquete_id = ?", enqueteID).Delete(&OpcaoEnquete{}).Error; err != nil {
			return err
		}
		for _, t := range textos {
			if err := tx.Create(&OpcaoEnquete{EnqueteID: enqueteID, Texto: t}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// RegistrarVoto grava o voto. O índice único barra voto repetido do mesmo token.
func (r *Repository) RegistrarVoto(v *VotoEnquete) error {
	return r.DB.Create(v).Error
}

func (r *Repository) JaVotou(enqueteID uint, token string) (bool, error) {
	var total int64
	err := r.DB.Model(&VotoEnquete{}).
		Where("enquete_id = ? AND token_eleitor = ?", enqueteID, token).
		Count(&total).Error
	return total > 0, err
}

// ContagemVotos devolve o total de votos por opção.
func (r *Repository) ContagemVotos(enqueteID uint) (map[uint]int64, error) {
	type linha struct {
		OpcaoID uint
		Total   int64
	}
	var linhas []linha
	err := r.DB.Model(&VotoEnquete{}).
		Select("opcao_id, COUNT(*) AS total").
		Where("enquete_id = ?", enqueteID).
		Group("opcao_id").
		Scan(&linhas).Error
	if err != nil {
		return nil, err
	}
	contagem := make(map[uint]int64, len(linhas))
	for _, l := range linhas {
		contagem[l.OpcaoID] = l.Total
	}
	return contagem, nil
}
