package dto

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	GUID     string `json:"guid"`
}

type LoginResponse struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         UserPayload `json:"user"`
}
