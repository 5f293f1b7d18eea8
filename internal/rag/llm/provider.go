package llm

import (
	"context"

	"docchat/internal/domain/chatModel"
)

// Provider is the text-completion oracle. It receives the full ordered
// conversation history and returns a single generated turn. maxTokens <= 0
// means unbounded output.
type Provider interface {
	Complete(ctx context.Context, history []chatModel.Turn, temperature float64, maxTokens int64) (string, error)
}

// OracleError wraps any transport, timeout or quota failure from the
// provider. Handlers translate it into a user-facing reply.
type OracleError struct {
	Err error
}

func (e *OracleError) Error() string {
	return "oracle: " + e.Err.Error()
}

func (e *OracleError) Unwrap() error {
	return e.Err
}
