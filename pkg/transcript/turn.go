// Package transcript splits chat-transcript exports into speaker turns and
// recovers fenced code blocks that survive sanitization as plain text.
package transcript

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Role identifies the speaker of a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleUnknown   Role = "unknown"
)

// assistantLabel is the fixed display name for the assistant role.
const assistantLabel = "ChatGPT"

// Turn is one contiguous span of a transcript attributed to a single speaker.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

var titleCaser = cases.Title(language.English)

// DisplayLabel resolves the heading label for a role: the custom user label
// when one is configured, the fixed assistant name, otherwise the title-cased
// role itself.
func (r Role) DisplayLabel(userLabel string) string {
	switch {
	case r == RoleUser && userLabel != "":
		return userLabel
	case r == RoleAssistant:
		return assistantLabel
	default:
		return titleCaser.String(string(r))
	}
}
