// Package leads loads the campaign prospect list from an .xlsx workbook and
// produces the summary shown on the campaign overview endpoint.
package leads

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"salesdialer-go/internal/logger"
	"salesdialer-go/internal/types"
)

// Load reads prospects from the first sheet of an .xlsx workbook. Column
// positions are detected from the header row by keyword so whatever export
// the CRM produces still loads. Rows without a dialable phone number are
// skipped quietly.
func Load(path string) ([]types.Lead, error) {
	log := logger.New().WithField("component", "leads.loader").WithField("path", path)

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}

	idIdx, nameIdx, companyIdx, phoneIdx, emailIdx, cityIdx, productIdx := -1, -1, -1, -1, -1, -1, -1
	for i, h := range rows[0] {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(l, "phone") || strings.Contains(l, "mobile") || strings.Contains(l, "number"):
			if phoneIdx == -1 {
				phoneIdx = i
			}
		case strings.Contains(l, "company") || strings.Contains(l, "organisation") || strings.Contains(l, "organization"):
			if companyIdx == -1 {
				companyIdx = i
			}
		case strings.Contains(l, "mail"):
			if emailIdx == -1 {
				emailIdx = i
			}
		case strings.Contains(l, "city") || strings.Contains(l, "location"):
			if cityIdx == -1 {
				cityIdx = i
			}
		case strings.Contains(l, "product") || strings.Contains(l, "interest"):
			if productIdx == -1 {
				productIdx = i
			}
		case strings.Contains(l, "id"):
			if idIdx == -1 {
				idIdx = i
			}
		case strings.Contains(l, "name"):
			if nameIdx == -1 {
				nameIdx = i
			}
		}
	}
	if phoneIdx == -1 {
		return nil, fmt.Errorf("no phone column detected in header %v", rows[0])
	}

	cell := func(r []string, idx int) string {
		if idx >= 0 && idx < len(r) {
			return strings.TrimSpace(r[idx])
		}
		return ""
	}

	var out []types.Lead
	skipped := 0
	for i, r := range rows {
		if i == 0 {
			continue
		}
		lead := types.Lead{
			LeadID:  cell(r, idIdx),
			Name:    cell(r, nameIdx),
			Company: cell(r, companyIdx),
			Phone:   cell(r, phoneIdx),
			Email:   cell(r, emailIdx),
			City:    cell(r, cityIdx),
			Product: cell(r, productIdx),
		}
		if !dialable(lead.Phone) {
			skipped++
			continue
		}
		out = append(out, lead)
	}
	log.WithField("loaded", len(out)).WithField("skipped", skipped).Info("prospect list loaded")
	return out, nil
}

// dialable requires at least 7 digits once formatting characters are
// stripped.
func dialable(phone string) bool {
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
			// formatting, ignore
		default:
			return false
		}
	}
	return digits >= 7
}
