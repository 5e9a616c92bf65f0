package security

import (
	"strings"
	"unicode/utf8"
)

// MinPasswordLen is the shortest password that earns the length points.
const MinPasswordLen = 8

// SpecialChars are the only characters counted by the special-character rule.
const SpecialChars = "!@#$%^&*"

// Feedback messages, one per rule.
const (
	MsgTooCommon = "This password is too common. Please choose a more secure one."
	MsgTooShort  = "Password should be at least 8 characters long."
	MsgCaseMix   = "Include both uppercase and lowercase letters."
	MsgNoDigit   = "Add at least one number (0-9)."
	MsgNoSpecial = "Include at least one special character (!@#$%^&*)."
)

// MaxScore is the score of a password that passes every rule.
const MaxScore = 5

// Rule names, used as metric labels.
const (
	RuleBlacklist = "blacklist"
	RuleLength    = "length"
	RuleCaseMix   = "uppercase_lowercase"
	RuleDigit     = "digit"
	RuleSpecial   = "special_char"
)

// Rule is a named predicate over a candidate password.
type Rule struct {
	Name    string
	Weight  int
	Message string
	Check   func(password string) bool
}

// Result is the outcome of evaluating one password. Failed holds the names
// of the rules that did not pass, aligned with Feedback.
type Result struct {
	Score       int
	Feedback    []string
	Blacklisted bool
	Failed      []string
}

var blacklist = map[string]struct{}{
	"password":    {},
	"123456":      {},
	"12345678":    {},
	"qwerty":      {},
	"abc123":      {},
	"password123": {},
}

// rules are evaluated in order after the blacklist check.
var rules = []Rule{
	{Name: RuleLength, Weight: 2, Message: MsgTooShort, Check: hasMinLength},
	{Name: RuleCaseMix, Weight: 1, Message: MsgCaseMix, Check: hasCaseMix},
	{Name: RuleDigit, Weight: 1, Message: MsgNoDigit, Check: hasDigit},
	{Name: RuleSpecial, Weight: 1, Message: MsgNoSpecial, Check: hasSpecial},
}

// Rules returns a copy of the scoring rules in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// IsBlacklisted reports whether password is a known-weak password,
// ignoring case.
func IsBlacklisted(password string) bool {
	_, ok := blacklist[strings.ToLower(password)]
	return ok
}

// Evaluate scores password against the blacklist and the fixed rule set.
// A blacklisted password scores 0 and no other rule is checked.
func Evaluate(password string) Result {
	if IsBlacklisted(password) {
		return Result{
			Score:       0,
			Feedback:    []string{MsgTooCommon},
			Blacklisted: true,
			Failed:      []string{RuleBlacklist},
		}
	}

	res := Result{Feedback: []string{}}
	for _, r := range rules {
		if r.Check(password) {
			res.Score += r.Weight
			continue
		}
		res.Feedback = append(res.Feedback, r.Message)
		res.Failed = append(res.Failed, r.Name)
	}
	return res
}

func hasMinLength(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLen
}

func hasCaseMix(password string) bool {
	var upper, lower bool
	for i := 0; i < len(password); i++ {
		switch c := password[i]; {
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= 'a' && c <= 'z':
			lower = true
		}
		if upper && lower {
			return true
		}
	}
	return false
}

func hasDigit(password string) bool {
	for i := 0; i < len(password); i++ {
		if password[i] >= '0' && password[i] <= '9' {
			return true
		}
	}
	return false
}

func hasSpecial(password string) bool {
	return strings.ContainsAny(password, SpecialChars)
}
