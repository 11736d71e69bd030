package models

type TipoGestionModel struct {
	Id           int             `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string          `json:"name" gorm:"column:name;type:varchar(255);not null"`
	SecretariaID int             `json:"secretariaId" gorm:"column:secretaria_id;not null"`
	Secretaria   SecretariaModel `json:"secretaria,omitempty" gorm:"foreignKey:SecretariaID;references:Id"`
}

func (TipoGestionModel) TableName() string {
	return "tipos_gestion"
}
