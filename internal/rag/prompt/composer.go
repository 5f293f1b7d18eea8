package prompt

import (
	"strings"

	"docchat/internal/config"
	"docchat/internal/domain/docModel"
)

// Compose builds the grounded instruction: persona directive, context block
// joined in retrieval order, then the verbatim question. The template is
// deterministic and never truncates the context - output budgeting belongs to
// the conversation manager, which in this design leaves it unbounded.
func Compose(question string, chunks []docModel.Chunk) string {
	texts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		texts = append(texts, c.Text)
	}

	var b strings.Builder
	b.WriteString(config.PersonaPrompt)
	b.WriteString(" Use the context below when it is relevant; if it does not contain the answer, say so.")
	b.WriteString("\n\nContext:\n")
	b.WriteString(strings.Join(texts, "\n"))
	b.WriteString("\n\nUser Question: ")
	b.WriteString(question)
	return b.String()
}
