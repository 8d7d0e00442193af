package domain

// TipoServicio is a static reference catalog entry classifying requests.
type TipoServicio struct {
	ID     int32
	Nombre string
}
