package leads

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"salesdialer-go/internal/types"
)

func writeWorkbook(t *testing.T, header []interface{}, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "leads.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoad(t *testing.T) {
	path := writeWorkbook(t,
		[]interface{}{"Lead ID", "Full Name", "Company Name", "Phone Number", "Email", "City", "Product Interest"},
		[][]interface{}{
			{"L-1", "Priya Natarajan", "Northwind Traders", "+1 512-555-0114", "priya@northwind.example", "Austin", "fleet tracking"},
			{"L-2", "Marco Silva", "", "not a number", "", "Lisbon", ""},
			{"L-3", "Dana Wu", "Initech", "(555) 867-5309", "dana@initech.example", "austin", "payroll"},
		},
	)

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, 2, "row without a dialable phone is skipped")

	assert.Equal(t, types.Lead{
		LeadID:  "L-1",
		Name:    "Priya Natarajan",
		Company: "Northwind Traders",
		Phone:   "+1 512-555-0114",
		Email:   "priya@northwind.example",
		City:    "Austin",
		Product: "fleet tracking",
	}, got[0])
	assert.Equal(t, "Dana Wu", got[1].Name)
}

func TestLoadNoPhoneColumn(t *testing.T) {
	path := writeWorkbook(t,
		[]interface{}{"Full Name", "City"},
		[][]interface{}{{"Priya", "Austin"}},
	)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no phone column")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}

func TestDialable(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+1 512-555-0114", true},
		{"(555) 867-5309", true},
		{"5550114", true},
		{"555-011", false},
		{"not a number", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dialable(tt.phone), "phone %q", tt.phone)
	}
}

func TestSummarize(t *testing.T) {
	prospects := []types.Lead{
		{Name: "a", Phone: "5550100", City: "Austin", Email: "a@x.example", Company: "Acme", Product: "Payroll"},
		{Name: "b", Phone: "5550101", City: "austin", Product: "payroll"},
		{Name: "c", Phone: "5550102", City: "Lisbon", Email: "c@x.example"},
		{Name: "d", Phone: "5550103"},
	}
	s := Summarize(prospects)
	assert.Equal(t, 4, s.TotalLeads)
	assert.Equal(t, map[string]int{"austin": 2, "lisbon": 1}, s.ByCity)
	assert.Equal(t, map[string]int{"payroll": 2}, s.ByProduct)
	assert.Equal(t, 2, s.WithEmail)
	assert.Equal(t, 1, s.WithCompany)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TotalLeads)
	assert.Empty(t, s.ByCity)
}
