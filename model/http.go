package model

type ErrorResponse struct {
	Error string `json:"detail"`
}

type KeysResponse struct {
	Keys []string `json:"keys"`
}
