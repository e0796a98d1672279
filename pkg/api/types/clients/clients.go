package clients

// Status values the server knows for a client.
const (
	StatusActive   = "Activo"
	StatusInactive = "Inactivo"
)

// Detail is a client (customer) record as the server returns it.
//
// JSON field names follow the server's wire format.
type Detail struct {
	Id        int     `json:"id"`
	Code      string  `json:"codigoalte"`
	LegalName string  `json:"razonsocial"`
	Name      string  `json:"nombre"`
	Address   string  `json:"direccion"`
	Phone     string  `json:"telefono"`
	Rut       string  `json:"rut"`
	Email     string  `json:"email"`
	Status    string  `json:"estado"`
	Latitude  float64 `json:"latitud"`
	Longitude float64 `json:"longitud"`
}

func (a Detail) Equal(b Detail) bool {
	return a == b
}

// Draft is the payload to create or update a client.
//
// Zero-valued fields are omitted from the request body, so a partial
// update sends only what the caller filled in.
type Draft struct {
	Code      string  `json:"codigoalte,omitempty"`
	LegalName string  `json:"razonsocial,omitempty"`
	Name      string  `json:"nombre,omitempty"`
	Address   string  `json:"direccion,omitempty"`
	Phone     string  `json:"telefono,omitempty"`
	Rut       string  `json:"rut,omitempty"`
	Email     string  `json:"email,omitempty"`
	Status    string  `json:"estado,omitempty"`
	Latitude  float64 `json:"latitud,omitempty"`
	Longitude float64 `json:"longitud,omitempty"`
}

// DraftOf projects a record into the payload resubmitting it.
func DraftOf(d Detail) Draft {
	return Draft{
		Code:      d.Code,
		LegalName: d.LegalName,
		Name:      d.Name,
		Address:   d.Address,
		Phone:     d.Phone,
		Rut:       d.Rut,
		Email:     d.Email,
		Status:    d.Status,
		Latitude:  d.Latitude,
		Longitude: d.Longitude,
	}
}
