package dtos

import "time"

// CreateGestionDTO is the payload of the "nueva gestión" form.
type CreateGestionDTO struct {
	Titulo        string `json:"titulo"`
	Descripcion   string `json:"descripcion"`
	Estado        string `json:"estado"`
	Direccion     string `json:"direccion"`
	SecretariaID  int    `json:"secretariaId"`
	TipoGestionID int    `json:"tipoGestionId"`
}

// GestionSummaryDTO represents a denormalized view of a gestión for the
// "mis gestiones" listing, including optional related catalog names.
type GestionSummaryDTO struct {
	ID             int       `json:"id"`
	Titulo         string    `json:"titulo"`
	Descripcion    string    `json:"descripcion"`
	Estado         string    `json:"estado"`
	Direccion      *string   `json:"direccion,omitempty"`
	Latitud        *float64  `json:"latitud,omitempty"`
	Longitud       *float64  `json:"longitud,omitempty"`
	SecretariaName *string   `json:"secretariaName,omitempty"`
	TipoGestion    *string   `json:"tipoGestionName,omitempty"`
	FechaCreacion  time.Time `json:"fechaCreacion"`
}

// Coordenadas is the result of a successful address lookup.
type Coordenadas struct {
	Latitud  float64 `json:"latitud"`
	Longitud float64 `json:"longitud"`
}
