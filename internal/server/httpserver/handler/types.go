package handler

// loginRequest is the credential payload for POST /administradores/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the successful login payload.
type loginResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// messagesResponse carries validation violation messages.
type messagesResponse struct {
	Messages []string `json:"messages"`
}

// errorResponse carries a structured error code and message.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// healthResponse is the GET /health payload.
type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Time    string `json:"time"`
}

// homeResponse is the GET / payload.
type homeResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
}
