// Package testutils provides deterministic test doubles for the
// elicitation ports.
package testutils

import (
	"context"

	"github.com/ahrav/pairwise/internal/ports"
)

var _ ports.JudgeIO = (*ScriptedJudge)(nil)

// ScriptedJudge implements the JudgeIO port with a pre-recorded
// response script for consistent testing of the elicitation protocol.
// Each Prompt consumes the next scripted response; once the script is
// exhausted, Prompt reports ErrInputExhausted, which is how tests
// exercise the abort-and-discard behavior.
type ScriptedJudge struct {
	// responses is the remaining script, consumed front to back.
	responses []string
	// Prompts records every prompt text, in order.
	Prompts []string
	// Said records every informational line, in order.
	Said []string
}

// NewScriptedJudge creates a judge that answers prompts with the given
// responses in order.
func NewScriptedJudge(responses ...string) *ScriptedJudge {
	return &ScriptedJudge{responses: responses}
}

// Prompt implements the JudgeIO port by consuming the next scripted
// response.
func (j *ScriptedJudge) Prompt(_ context.Context, text string) (string, error) {
	j.Prompts = append(j.Prompts, text)
	if len(j.responses) == 0 {
		return "", ports.ErrInputExhausted
	}
	resp := j.responses[0]
	j.responses = j.responses[1:]
	return resp, nil
}

// Say implements the JudgeIO port by recording the line.
func (j *ScriptedJudge) Say(text string) {
	j.Said = append(j.Said, text)
}

// Remaining returns how many scripted responses are left unconsumed.
func (j *ScriptedJudge) Remaining() int { return len(j.responses) }
