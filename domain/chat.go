package domain

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatMessage is one turn of an advisory conversation. History is kept by
// the caller and replayed in submission order on every request.
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}
