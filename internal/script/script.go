// Package script personalizes call scripts by token substitution. Scripts
// use {token} placeholders; unknown tokens are left intact so a typo shows
// up in playback instead of vanishing silently.
package script

import (
	"strings"

	"salesdialer-go/internal/types"
)

// Render substitutes every {token} whose key appears in vars.
func Render(template string, vars map[string]string) string {
	if len(vars) == 0 {
		return template
	}
	pairs := make([]string, 0, len(vars)*2)
	for token, value := range vars {
		pairs = append(pairs, "{"+token+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// LeadVars builds the standard substitution set for a prospect. Missing
// lead fields render as empty strings.
func LeadVars(lead types.Lead, agentName, product string) map[string]string {
	first, last := splitName(lead.Name)
	if product == "" {
		product = lead.Product
	}
	return map[string]string{
		"first_name": first,
		"last_name":  last,
		"name":       lead.Name,
		"company":    lead.Company,
		"city":       lead.City,
		"agent_name": agentName,
		"product":    product,
	}
}

// Personalize renders a script for one prospect.
func Personalize(template string, lead types.Lead, agentName, product string) string {
	return Render(template, LeadVars(lead, agentName, product))
}

func splitName(full string) (first, last string) {
	fields := strings.Fields(full)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}
