package adapter

import "docchat/internal/api"

func ToTextReply(userID string, text string) api.TextReply {
	return api.TextReply{
		UserID: userID,
		Text:   text,
	}
}

func ToIngestReply(userID string, document string, chunks int) api.IngestReply {
	return api.IngestReply{
		UserID:        userID,
		Document:      document,
		ChunksIndexed: chunks,
	}
}

func BadRequest(message string, code int) api.ErrorReply {
	return api.ErrorReply{
		Code:    code,
		Message: message,
	}
}
