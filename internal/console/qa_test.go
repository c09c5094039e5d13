package console_test

import (
	"strings"
	"testing"

	"github.com/ali3442/SCM-Simulation-Project/internal/ai"
	"github.com/ali3442/SCM-Simulation-Project/internal/console"
)

func runSession(t *testing.T, gen *ai.Mock, input string) (int, string) {
	t.Helper()
	var out strings.Builder
	qa := console.NewQA(gen, strings.NewReader(input), &out, nil)
	return qa.Run(), out.String()
}

func TestQAExitTokens(t *testing.T) {
	for _, token := range []string{"exit", "no", "quit", "stop", "n", "لا", "EXIT", "No"} {
		t.Run(token, func(t *testing.T) {
			gen := ai.NewMock()
			asked, out := runSession(t, gen, token+"\n")
			if asked != 0 {
				t.Fatalf("asked = %d, want 0", asked)
			}
			if gen.Calls != 0 {
				t.Fatalf("generator must not be called, got %d calls", gen.Calls)
			}
			if !strings.Contains(out, "Ending the Q&A session") {
				t.Fatalf("missing farewell in output:\n%s", out)
			}
		})
	}
}

func TestQAContinueFlow(t *testing.T) {
	gen := ai.NewMock()
	gen.Response = "lead time is the delay between order and delivery"

	input := "what is lead time?\nyes\nwhat is safety stock?\nno\n"
	asked, out := runSession(t, gen, input)

	if asked != 2 {
		t.Fatalf("asked = %d, want 2", asked)
	}
	if gen.Calls != 2 {
		t.Fatalf("generator calls = %d, want 2", gen.Calls)
	}
	if !strings.Contains(gen.Prompts[0], "what is lead time?") {
		t.Fatalf("prompt lost the question: %q", gen.Prompts[0])
	}
	if !strings.Contains(out, gen.Response) {
		t.Fatalf("answer missing from output:\n%s", out)
	}
}

func TestQAUnknownContinueAnswerEndsSession(t *testing.T) {
	gen := ai.NewMock()
	asked, _ := runSession(t, gen, "question one\nmaybe\n")
	if asked != 1 {
		t.Fatalf("asked = %d, want 1", asked)
	}
}

func TestQAArabicContinueToken(t *testing.T) {
	gen := ai.NewMock()
	asked, _ := runSession(t, gen, "سؤال\nنعم\nquestion two\nn\n")
	if asked != 2 {
		t.Fatalf("asked = %d, want 2", asked)
	}
}

func TestQAEndOfInput(t *testing.T) {
	gen := ai.NewMock()
	asked, out := runSession(t, gen, "")
	if asked != 0 {
		t.Fatalf("asked = %d, want 0", asked)
	}
	if !strings.Contains(out, "Ending the Q&A session") {
		t.Fatalf("missing farewell in output:\n%s", out)
	}
}
