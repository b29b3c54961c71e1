// internal/ratelimit/store.go
package ratelimit

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Store é o acesso ao registro persistente de tentativas. Fica atrás de
// interface para o guard poder ser testado com falhas de infraestrutura
// simuladas, sem depender de uma indisponibilidade real.
type Store interface {
	// ContarDesde conta as tentativas de (identificador, acao) com
	// timestamp >= desde.
	ContarDesde(ctx context.Context, identificador string, acao Acao, desde time.Time) (int64, error)
	// MaisAntigaDesde devolve o timestamp da tentativa mais antiga ainda
	// dentro da janela.
	MaisAntigaDesde(ctx context.Context, identificador string, acao Acao, desde time.Time) (time.Time, error)
	// Registrar grava uma nova tentativa permitida.
	Registrar(ctx context.Context, identificador string, acao Acao, em time.Time) error
}

/* ========================= Implementação Postgres ========================= */

// GormStore guarda as tentativas na tabela tentativa_acessos.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) ContarDesde(ctx context.Context, identificador string, acao Acao, desde time.Time) (int64, error) {
	var total int64
	err := s.DB.WithContext(ctx).
		Model(&TentativaAcesso{}).
		Where("identificador = ? AND acao = ? AND created_at >= ?", identificador, string(acao), desde).
		Count(&total).Error
	return total, err
}

func (s *GormStore) MaisAntigaDesde(ctx context.Context, identificador string, acao Acao, desde time.Time) (time.Time, error) {
	var tentativa TentativaAcesso
	err := s.DB.WithContext(ctx).
		Where("identificador = ? AND acao = ? AND created_at >= ?", identificador, string(acao), desde).
		Order("created_at ASC").
		First(&tentativa).Error
	if err != nil {
		return time.Time{}, err
	}
	return tentativa.CreatedAt, nil
}

func (s *GormStore) Registrar(ctx context.Context, identificador string, acao Acao, em time.Time) error {
	return s.DB.WithContext(ctx).Create(&TentativaAcesso{
		Identificador: identificador,
		Acao:          string(acao),
		CreatedAt:     em,
	}).Error
}
