package chatModel

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one entry in a session's conversation history. The history is
// append-only for the process lifetime; role alternation is not enforced.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
