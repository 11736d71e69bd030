package models

import "time"

// Estados conocidos de una gestión
const (
	EstadoPendiente  = "Pendiente"
	EstadoEnProceso  = "En Proceso"
	EstadoCompletada = "Completada"
)

type GestionModel struct {
	Id            int               `json:"id" gorm:"primaryKey;autoIncrement"`
	Titulo        string            `json:"titulo" gorm:"column:titulo;type:varchar(255);not null"`
	Descripcion   string            `json:"descripcion" gorm:"column:descripcion;type:text;not null"`
	Estado        string            `json:"estado" gorm:"column:estado;type:varchar(50);not null"`
	UsuarioID     int               `json:"usuarioId" gorm:"column:usuario_id;not null"`
	Usuario       UserModel         `json:"-" gorm:"foreignKey:UsuarioID;references:Id"`
	Direccion     *string           `json:"direccion" gorm:"column:direccion;type:varchar(255)"`
	Latitud       *float64          `json:"latitud" gorm:"column:latitud"`
	Longitud      *float64          `json:"longitud" gorm:"column:longitud"`
	SecretariaID  *int              `json:"secretariaId" gorm:"column:secretaria_id"`
	Secretaria    *SecretariaModel  `json:"secretaria,omitempty" gorm:"foreignKey:SecretariaID;references:Id"`
	TipoGestionID *int              `json:"tipoGestionId" gorm:"column:tipo_gestion_id"`
	TipoGestion   *TipoGestionModel `json:"tipoGestion,omitempty" gorm:"foreignKey:TipoGestionID;references:Id"`
	CreatedAt     time.Time         `json:"createdAt" gorm:"column:created_at;autoCreateTime;not null"`
}

func (GestionModel) TableName() string {
	return "gestiones"
}
