package respond

// LoginRespond is returned by signup and login. The access token is
// also set as the JWT cookie for browser clients.
type LoginRespond struct {
	User         UserInfoRespond `json:"user"`
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
}
