// internal/moeda/model.go
package moeda

import "gorm.io/gorm"

// Moeda é uma moeda de exibição configurada manualmente.
// Taxa = unidades de moeda local por 1 unidade da moeda; BRL tem Taxa 1.
// Não há feed de câmbio ao vivo: a taxa é administrada à mão.
type Moeda struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Codigo  string  `gorm:"size:10;uniqueIndex;not null" json:"codigo"`
	Simbolo string  `gorm:"size:10;not null" json:"simbolo"`
	Nome    string  `gorm:"size:100;not null" json:"nome"`
	Taxa    float64 `gorm:"not null;default:1" json:"taxa"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Moeda{})
}

// SeedBRL garante a moeda base com taxa 1.
func SeedBRL(db *gorm.DB) error {
	var existente Moeda
	if err := db.Where("codigo = ?", "BRL").First(&existente).Error; err == nil {
		return nil
	}
	return db.Create(&Moeda{Codigo: "BRL", Simbolo: "R$", Nome: "Real Brasileiro", Taxa: 1}).Error
}
