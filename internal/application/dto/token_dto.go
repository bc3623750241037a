package dto

// TokenResponse salida de POST /token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ClientCredentials credenciales opcionales (HTTP Basic) para POST /token.
type ClientCredentials struct {
	ClientID     string
	ClientSecret string
	Present      bool
}
