package entities

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest carries the full prior history plus the new user message (last
// entry of History) and the slug of the vehicle page the visitor came from,
// when any.
type ChatRequest struct {
	History     []ChatMessage `json:"history"`
	VehicleSlug string        `json:"vehicle_slug,omitempty"`
}

// ChatResponse is the assistant's canned reply.
type ChatResponse struct {
	Content string `json:"content"`
}
