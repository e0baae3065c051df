package order

import (
	"encoding/json"
	"log"
	"regexp"
	"strings"
)

// Marker is the token the model emits before the machine-readable order.
const Marker = "ORDER_JSON:"

// The payload is one JSON object on a single line at the end of the reply.
// `.` does not cross newlines, so the match is bounded to that line.
var payloadRe = regexp.MustCompile(Marker + `\s*(\{.*\})`)

// Extract scans an assistant reply for the structured order payload. It
// returns the user-visible reply and, when present and parsable, the order.
// The marker and JSON are never shown to the end user. A missing marker is a
// no-op; an unparsable payload is logged and the reply passes through
// unchanged. Extraction never fails the request.
func Extract(reply string) (string, *Order) {
	idx := strings.Index(reply, Marker)
	if idx < 0 {
		return reply, nil
	}

	m := payloadRe.FindStringSubmatch(reply)
	if m == nil {
		log.Printf("order: marker present but no payload matched")
		return reply, nil
	}

	var o Order
	if err := json.Unmarshal([]byte(m[1]), &o); err != nil {
		log.Printf("order: unparsable payload: %v", err)
		return reply, nil
	}

	visible := strings.TrimSpace(reply[:idx])
	return visible, &o
}
