package domain

// ChatRole is a participant in the coach conversation. The two values
// mirror the hosted model's expected role names.
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatMessage is one turn of the coach conversation, append-only.
type ChatMessage struct {
	ID      string   `json:"id"`
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}
