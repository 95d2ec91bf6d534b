package telegram

import "strings"

// Lead is a contact-form submission.
type Lead struct {
	Name     string `json:"name"`
	Telegram string `json:"telegram"`
	Industry string `json:"industry"`
	Project  string `json:"project"`
}

// FormatLead renders the message posted to the team chat. Empty fields are
// shown as "-".
func FormatLead(l Lead) string {
	var b strings.Builder
	b.WriteString("NEW LEAD\n\n")
	b.WriteString("Name: " + orDash(l.Name) + "\n")
	b.WriteString("Telegram: " + orDash(l.Telegram) + "\n")
	b.WriteString("Industry: " + orDash(l.Industry) + "\n")
	b.WriteString("Project: " + orDash(l.Project))
	return b.String()
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
