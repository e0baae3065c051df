package chat

// Request is the body the chat widget posts. History uses the widget's
// native format: a role tag plus text parts.
type Request struct {
	Message string        `json:"message"`
	History []HistoryItem `json:"history"`
}

type HistoryItem struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type Response struct {
	Response string `json:"response"`
}
