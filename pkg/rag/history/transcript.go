// Package history formats stored chat messages into the transcript string
// fed to the refinement and generation prompts.
package history

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	// How many trailing messages feed the prompts.
	DefaultLimit = 10
)

type Message struct {
	Role    string
	Content string
}

// Tail returns the last n messages in chronological order.
func Tail(messages []Message, n int) []Message {
	if n <= 0 || len(messages) <= n {
		return messages
	}
	return messages[len(messages)-n:]
}

// Transcript renders messages as "User:"/"Assistant:" lines separated by
// blank lines. Other roles are skipped.
func Transcript(messages []Message) string {
	out := ""
	for _, msg := range messages {
		var line string
		switch msg.Role {
		case RoleUser:
			line = "User: " + msg.Content
		case RoleAssistant:
			line = "Assistant: " + msg.Content
		default:
			continue
		}
		if out != "" {
			out += "\n\n"
		}
		out += line
	}
	return out
}
