package leads

import (
	"strings"

	"salesdialer-go/internal/types"
)

// Summary is the campaign-level view of the loaded prospect list.
type Summary struct {
	TotalLeads  int            `json:"total_leads"`
	ByCity      map[string]int `json:"by_city"`
	ByProduct   map[string]int `json:"by_product"`
	WithEmail   int            `json:"with_email"`
	WithCompany int            `json:"with_company"`
}

// Summarize aggregates the prospect list for the overview endpoint. City and
// product keys are lowercased; blanks are omitted.
func Summarize(prospects []types.Lead) Summary {
	s := Summary{
		TotalLeads: len(prospects),
		ByCity:     map[string]int{},
		ByProduct:  map[string]int{},
	}
	for _, l := range prospects {
		if city := strings.ToLower(strings.TrimSpace(l.City)); city != "" {
			s.ByCity[city]++
		}
		if product := strings.ToLower(strings.TrimSpace(l.Product)); product != "" {
			s.ByProduct[product]++
		}
		if l.Email != "" {
			s.WithEmail++
		}
		if l.Company != "" {
			s.WithCompany++
		}
	}
	return s
}
