package dto

type TokenInput struct {
	Token string `json:"token"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
