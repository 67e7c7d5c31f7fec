package models

import "strings"

// Ad is the minimal advertisement shape the engine needs. Platform and URL
// are carried for callers but never analyzed.
type Ad struct {
	ID           string `json:"id"             yaml:"id"`
	PrimaryText  string `json:"primary_text"   yaml:"primary_text"`
	Headline     string `json:"headline"       yaml:"headline"`
	Description  string `json:"description"    yaml:"description"`
	CallToAction string `json:"call_to_action" yaml:"call_to_action"`
	Platform     string `json:"platform,omitempty" yaml:"platform,omitempty"`
	URL          string `json:"url,omitempty"      yaml:"url,omitempty"`
}

// Text joins the non-blank text fields with a single space in the fixed
// order primary text, headline, description, call-to-action.
func (a Ad) Text() string {
	parts := make([]string, 0, 4)
	for _, f := range []string{a.PrimaryText, a.Headline, a.Description, a.CallToAction} {
		if f = strings.TrimSpace(f); f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}
