package constant

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"

	// Trailing messages included in the prompt transcript.
	ChatHistoryLimit = 10

	// Retrieval parameters for the chatbot.
	ChatTopK       = 4
	ChatMultiplier = 2

	ChatSourceWhatsApp = "WA"
)
