package domain

import "time"

// Foto is a gallery entry. It carries no user reference; the uploader only shows up in the file name.
type Foto struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	Descripcion string    `gorm:"size:255;not null" json:"descripcion"`
	RutaFoto    string    `gorm:"size:255;not null" json:"ruta_foto"`
	Fecha       time.Time `gorm:"autoCreateTime" json:"fecha"`
}

func (Foto) TableName() string { return "p10_foto" }
