package users

// Detail is the account owning the current session.
type Detail struct {
	Id       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

func (a Detail) Equal(b Detail) bool {
	return a == b
}

// LoginData is the payload of a successful login response.
type LoginData struct {
	User  Detail `json:"usuario"`
	Token string `json:"token"`
}

// LoginRequest is the credential payload sent to the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
