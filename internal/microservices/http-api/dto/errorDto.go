package dto

// MessageResponse is the body of every error reply.
type MessageResponse struct {
	Message string `json:"message"`
}
