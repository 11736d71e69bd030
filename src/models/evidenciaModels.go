package models

import "time"

// EvidenciaModel is a file a citizen attaches to a gestión (a photo of the
// pothole, a scanned note). Stored on disk, metadata in the database.
type EvidenciaModel struct {
	Id           int          `json:"id" gorm:"primaryKey;autoIncrement"`
	GestionID    int          `json:"gestionId" gorm:"column:gestion_id;not null"`
	Gestion      GestionModel `json:"-" gorm:"foreignKey:GestionID;references:Id"`
	Filename     string       `json:"filename" gorm:"type:varchar(255);not null"`
	OriginalName string       `json:"originalName" gorm:"type:varchar(255);not null"`
	FilePath     string       `json:"filePath" gorm:"type:varchar(512);not null"`
	ContentType  string       `json:"contentType" gorm:"type:varchar(100)"`
	Size         int64        `json:"size"`
	CreatedAt    time.Time    `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
}

func (EvidenciaModel) TableName() string {
	return "evidencias"
}
