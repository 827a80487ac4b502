package flume

// Role represents the role of a message sender.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the conversation sent to the endpoint.
// Messages are forwarded in order; the endpoint interprets roles.
type Message struct {
	Role    Role
	Content string
}
