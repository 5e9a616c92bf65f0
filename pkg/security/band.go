package security

// Band is the three-tier verdict rendered for a score.
type Band struct {
	Label    string `json:"label"`
	Verdict  string `json:"verdict"`
	Color    string `json:"color"`
	Progress int    `json:"progress"`
}

var (
	BandStrong = Band{
		Label:    "Strong",
		Verdict:  "Strong Password!",
		Color:    "green",
		Progress: 100,
	}
	BandModerate = Band{
		Label:    "Moderate",
		Verdict:  "Moderate Password - Consider adding more security features.",
		Color:    "orange",
		Progress: 75,
	}
	BandWeak = Band{
		Label:    "Weak",
		Verdict:  "Weak Password - Improve it using the suggestions below.",
		Color:    "red",
		Progress: 50,
	}
)

// Classify maps a score to its band: 5 and above is strong, 3 and 4 are
// moderate, anything lower is weak.
func Classify(score int) Band {
	switch {
	case score >= 5:
		return BandStrong
	case score >= 3:
		return BandModerate
	default:
		return BandWeak
	}
}
