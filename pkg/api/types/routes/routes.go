package routes

const (
	StatusActive   = "Activo"
	StatusInactive = "Inactivo"
)

// Detail is a route record as the server returns it.
type Detail struct {
	Id          int     `json:"id"`
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion"`
	Origin      string  `json:"origen"`
	Destination string  `json:"destino"`
	Distance    float64 `json:"distancia"`
	Status      string  `json:"estado"`
}

func (a Detail) Equal(b Detail) bool {
	return a == b
}

// Draft is the payload to create or update a route.
type Draft struct {
	Name        string  `json:"nombre,omitempty"`
	Description string  `json:"descripcion,omitempty"`
	Origin      string  `json:"origen,omitempty"`
	Destination string  `json:"destino,omitempty"`
	Distance    float64 `json:"distancia,omitempty"`
	Status      string  `json:"estado,omitempty"`
}

// DraftOf projects a record into the payload resubmitting it.
func DraftOf(d Detail) Draft {
	return Draft{
		Name:        d.Name,
		Description: d.Description,
		Origin:      d.Origin,
		Destination: d.Destination,
		Distance:    d.Distance,
		Status:      d.Status,
	}
}
