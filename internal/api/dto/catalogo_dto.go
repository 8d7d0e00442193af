package dto

import "github.com/helpdesk-ti/solicitudes-service/internal/domain"

// TipoServicioResponse mirrors the tipos_servicio row on the wire.
type TipoServicioResponse struct {
	ID     int32  `json:"id_tipo"`
	Nombre string `json:"nombre"`
}

// TecnicoResponse mirrors the tecnicos row on the wire.
type TecnicoResponse struct {
	ID           int32  `json:"id_tecnico"`
	Nombre       string `json:"nombre"`
	Email        string `json:"email"`
	Especialidad string `json:"especialidad"`
}

// FromTiposServicio converts a slice, never returning nil.
func FromTiposServicio(tipos []domain.TipoServicio) []TipoServicioResponse {
	items := make([]TipoServicioResponse, 0, len(tipos))
	for _, tipo := range tipos {
		items = append(items, TipoServicioResponse{ID: tipo.ID, Nombre: tipo.Nombre})
	}
	return items
}

// FromTecnicos converts a slice, never returning nil.
func FromTecnicos(tecnicos []domain.Tecnico) []TecnicoResponse {
	items := make([]TecnicoResponse, 0, len(tecnicos))
	for _, tecnico := range tecnicos {
		items = append(items, TecnicoResponse{
			ID:           tecnico.ID,
			Nombre:       tecnico.Nombre,
			Email:        tecnico.Email,
			Especialidad: tecnico.Especialidad,
		})
	}
	return items
}
