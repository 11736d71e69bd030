package models

type SecretariaModel struct {
	Id   int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"column:name;type:varchar(255);uniqueIndex;not null"`
}

func (SecretariaModel) TableName() string {
	return "secretarias"
}
