package respond

// ChatTokenRespond carries the chat frontend token for the caller.
type ChatTokenRespond struct {
	Token string `json:"token"`
}
