package model

import "github.com/jwalitptl/passmeter/pkg/security"

// CheckPasswordRequest is the body of POST /check-password. Password is a
// pointer so an empty string is accepted while a missing field is not.
type CheckPasswordRequest struct {
	Password *string `json:"password" binding:"required"`
}

// CheckPasswordResponse mirrors the evaluator result.
type CheckPasswordResponse struct {
	Score    int      `json:"score"`
	Feedback []string `json:"feedback"`
}

// NewCheckPasswordResponse copies score and feedback from res.
func NewCheckPasswordResponse(res security.Result) CheckPasswordResponse {
	feedback := res.Feedback
	if feedback == nil {
		feedback = []string{}
	}
	return CheckPasswordResponse{Score: res.Score, Feedback: feedback}
}

// GeneratePasswordResponse is the body of GET /generate-password.
type GeneratePasswordResponse struct {
	Password string `json:"password"`
}

// PasswordForm is the interactive form submission.
type PasswordForm struct {
	Password string `form:"password"`
}

// StrengthView is what the form template renders.
type StrengthView struct {
	Checked    bool
	Band       security.Band
	Feedback   []string
	Suggestion string
	Error      string
}
