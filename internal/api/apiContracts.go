package api

// Inbound events -------------------------------------

// TextMessage is one inbound user utterance, free chat or grounded question
// depending on the route it arrives on.
type TextMessage struct {
	UserID string `json:"user_id" validate:"required" example:"u_42"`
	Text   string `json:"text" validate:"required" example:"What did Euler prove?"`
}

// Outbound replies -----------------------------------

type TextReply struct {
	UserID string `json:"user_id" example:"u_42"`
	Text   string `json:"text"`
}

type IngestReply struct {
	UserID        string `json:"user_id"`
	Document      string `json:"document"`
	ChunksIndexed int    `json:"chunks_indexed"`
}

type ErrorReply struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Bad Request"`
}
