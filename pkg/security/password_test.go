package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		password string
		score    int
		feedback []string
	}{
		{
			name:     "blacklisted",
			password: "password",
			score:    0,
			feedback: []string{MsgTooCommon},
		},
		{
			name:     "blacklisted ignores case",
			password: "PassWord123",
			score:    0,
			feedback: []string{MsgTooCommon},
		},
		{
			name:     "empty",
			password: "",
			score:    0,
			feedback: []string{MsgTooShort, MsgCaseMix, MsgNoDigit, MsgNoSpecial},
		},
		{
			name:     "all rules pass",
			password: "Abcdefg1!",
			score:    5,
			feedback: []string{},
		},
		{
			name:     "lowercase only",
			password: "abcdefgh",
			score:    2,
			feedback: []string{MsgCaseMix, MsgNoDigit, MsgNoSpecial},
		},
		{
			name:     "short but varied",
			password: "Ab1!",
			score:    3,
			feedback: []string{MsgTooShort},
		},
		{
			name:     "digits only, not blacklisted",
			password: "1234567",
			score:    1,
			feedback: []string{MsgTooShort, MsgCaseMix, MsgNoSpecial},
		},
		{
			name:     "special outside the accepted set",
			password: "Abcdefg1?",
			score:    4,
			feedback: []string{MsgNoSpecial},
		},
		{
			name:     "non-ascii letters do not count for case mix",
			password: "ÄÖÜäöüßé",
			score:    2,
			feedback: []string{MsgCaseMix, MsgNoDigit, MsgNoSpecial},
		},
		{
			name:     "length counts characters not bytes",
			password: "ééééééé",
			score:    0,
			feedback: []string{MsgTooShort, MsgCaseMix, MsgNoDigit, MsgNoSpecial},
		},
		{
			name:     "invalid utf-8",
			password: "\xff\xfe\xfdAa1!xyz",
			score:    5,
			feedback: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Evaluate(tt.password)
			assert.Equal(t, tt.score, res.Score)
			assert.Equal(t, tt.feedback, res.Feedback)
			assert.Len(t, res.Failed, len(res.Feedback))
		})
	}
}

func TestEvaluate_BlacklistShortCircuits(t *testing.T) {
	for _, pw := range []string{"password", "PASSWORD", "123456", "12345678", "qwerty", "QwErTy", "abc123", "password123"} {
		res := Evaluate(pw)
		assert.True(t, res.Blacklisted, pw)
		assert.Zero(t, res.Score, pw)
		assert.Equal(t, []string{MsgTooCommon}, res.Feedback, pw)
		assert.Equal(t, []string{RuleBlacklist}, res.Failed, pw)
	}

	assert.Equal(t, Evaluate("password"), Evaluate("PASSWORD"))
	assert.False(t, Evaluate(" password").Blacklisted)
}

func TestEvaluate_ScoreZeroOnlyWhenEverythingFails(t *testing.T) {
	inputs := []string{
		"", "a", "A", "1", "!", "aB", "abcdefgh", "ABCDEFGH", "12345678",
		"!!!!!!!!", "short", "Sh0rt!", "password", "hello world", "\x00\x01",
		strings.Repeat("z", 100),
	}
	for _, pw := range inputs {
		res := Evaluate(pw)
		require.GreaterOrEqual(t, res.Score, 0, pw)
		require.LessOrEqual(t, res.Score, MaxScore, pw)

		allFail := !hasMinLength(pw) && !hasCaseMix(pw) && !hasDigit(pw) && !hasSpecial(pw)
		assert.Equal(t, res.Score == 0, res.Blacklisted || allFail, pw)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	for _, pw := range []string{"", "password", "Abcdefg1!", "abcdefgh"} {
		assert.Equal(t, Evaluate(pw), Evaluate(pw))
	}
}

func TestEvaluate_FeedbackNeverNil(t *testing.T) {
	assert.NotNil(t, Evaluate("Abcdefg1!").Feedback)
}

func TestRules_ReturnsCopy(t *testing.T) {
	rs := Rules()
	require.Len(t, rs, 4)
	assert.Equal(t, []string{RuleLength, RuleCaseMix, RuleDigit, RuleSpecial},
		[]string{rs[0].Name, rs[1].Name, rs[2].Name, rs[3].Name})

	total := 0
	for _, r := range rs {
		total += r.Weight
	}
	assert.Equal(t, MaxScore, total)

	rs[0].Weight = 100
	assert.Equal(t, 5, Evaluate("Abcdefg1!").Score)
}
