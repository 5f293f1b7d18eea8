package rag

import (
	"context"

	"docchat/internal/domain/chatModel"
	"docchat/internal/session"
)

// converse appends the user turn, asks the oracle for the next turn given the
// full history, and appends the reply. Not idempotent: every call grows the
// history and shifts what the model sees next time.
//
// On oracle failure the just-appended user turn is removed again, so a retry
// starts from a consistent log instead of stacking orphaned turns.
func (s *service) converse(ctx context.Context, sess *session.Session, content string) (string, error) {
	sess.History = append(sess.History, chatModel.Turn{Role: chatModel.RoleUser, Content: content})

	reply, err := s.executeOracleStep(ctx, sess.History)
	if err != nil {
		sess.History = sess.History[:len(sess.History)-1]
		s.logger.Error("ORACLE_FAILURE", "error", err)
		return "", err
	}

	sess.History = append(sess.History, chatModel.Turn{Role: chatModel.RoleAssistant, Content: reply})
	return reply, nil
}
