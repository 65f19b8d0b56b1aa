package ai

// Role identifies the author of a Message.
type Role string

const (
	// RoleSystem carries fixed instructions for the model.
	RoleSystem Role = "system"
	// RoleUser carries the request content.
	RoleUser Role = "user"
	// RoleAssistant carries earlier model output.
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged entry of a generation request.
type Message struct {
	Role    Role
	Content string
}

// SystemMessage returns a system-role message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage returns a user-role message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}
