package model

import "time"

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Turn is one immutable message of a chat session.
type Turn struct {
	Role      Role
	Content   string
	Timestamp time.Time
}

// Message is a role-tagged instruction sent to the language model.
type Message struct {
	Role    Role
	Content string
}
