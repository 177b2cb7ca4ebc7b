package auth

type GateRequest struct {
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"display_name"`
}

type GateResponse struct {
	Token       string `json:"token"`
	DisplayName string `json:"display_name,omitempty"`
}

type MeResponse struct {
	DisplayName string `json:"display_name,omitempty"`
}
