package chat

import "github.com/larapitasantfrancesc-beep/giuseppe2.0/internal/llm"

// Turns maps the widget history onto completion API roles and appends the
// new message as the final user turn. The widget tags its own replies
// "model"; anything else counts as the user. Order is preserved, nothing is
// deduplicated or capped.
func Turns(history []HistoryItem, message string) []llm.Turn {
	turns := make([]llm.Turn, 0, len(history)+1)

	for _, h := range history {
		role := llm.RoleUser
		if h.Role == "model" {
			role = llm.RoleAssistant
		}
		var text string
		if len(h.Parts) > 0 {
			text = h.Parts[0].Text
		}
		turns = append(turns, llm.Turn{Role: role, Content: text})
	}

	return append(turns, llm.Turn{Role: llm.RoleUser, Content: message})
}
