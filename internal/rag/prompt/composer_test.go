package prompt

import (
	"strings"
	"testing"

	"docchat/internal/config"
	"docchat/internal/domain/docModel"
)

func TestCompose_Layout(t *testing.T) {
	chunks := []docModel.Chunk{
		{Text: "first retrieved passage"},
		{Text: "second retrieved passage"},
	}

	got := Compose("What is the sum?", chunks)

	if !strings.HasPrefix(got, config.PersonaPrompt) {
		t.Error("composed prompt must start with the persona directive")
	}
	if !strings.HasSuffix(got, "User Question: What is the sum?") {
		t.Errorf("composed prompt must end with the verbatim question, got tail %q", got[len(got)-40:])
	}

	first := strings.Index(got, "first retrieved passage")
	second := strings.Index(got, "second retrieved passage")
	if first < 0 || second < 0 {
		t.Fatal("retrieved passages missing from prompt")
	}
	if first > second {
		t.Error("passages must appear in retrieval order")
	}
	if ctxPos := strings.Index(got, "Context:"); ctxPos < 0 || ctxPos > first {
		t.Error("context header must precede the passages")
	}
}

func TestCompose_IsDeterministic(t *testing.T) {
	chunks := []docModel.Chunk{{Text: "same passage"}}
	a := Compose("same question", chunks)
	b := Compose("same question", chunks)
	if a != b {
		t.Error("identical inputs must compose identical prompts")
	}
}

func TestCompose_QuestionSurvivesVerbatim(t *testing.T) {
	question := "  spaced?  \"quoted\" \n multiline "
	got := Compose(question, nil)
	if !strings.Contains(got, question) {
		t.Error("question must not be normalized or trimmed")
	}
}
