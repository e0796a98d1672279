package trucks

const (
	StatusActive   = "Activo"
	StatusInactive = "Inactivo"
)

// Detail is a truck record as the server returns it.
type Detail struct {
	Id       int     `json:"id"`
	Name     string  `json:"nombre"`
	Plate    string  `json:"patente"`
	Capacity float64 `json:"capacidad"`
	Status   string  `json:"estado"`
}

func (a Detail) Equal(b Detail) bool {
	return a == b
}

// Draft is the payload to create or update a truck.
type Draft struct {
	Name     string  `json:"nombre,omitempty"`
	Plate    string  `json:"patente,omitempty"`
	Capacity float64 `json:"capacidad,omitempty"`
	Status   string  `json:"estado,omitempty"`
}

// DraftOf projects a record into the payload resubmitting it.
func DraftOf(d Detail) Draft {
	return Draft{
		Name:     d.Name,
		Plate:    d.Plate,
		Capacity: d.Capacity,
		Status:   d.Status,
	}
}
