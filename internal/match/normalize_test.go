package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"scrapRate", "scraprate"},
		{"ScrapRate", "scraprate"},
		{"scrap_rate", "scraprate"},
		{"SCRAP-RATE", "scraprate"},
		{"Scrap Rate", "scraprate"},
		{"Scrap %", "scrap"},
		{"Shift Start (hh:mm)", "shiftstarthhmm"},
		{"MachineID", "machineid"},
		{"QCDept", "qcdept"},
		{"Machines", "machine"},
		{"Größe", "größe"},
		{"", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeHeader(tt.input))
		})
	}
}

func TestNormalizeHeaderWithNoiseStrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"MachineID", "machine"},
		{"machine_code", "machine"},
		{"Machine No.", "machine"},
		{"material_name_code", "material"},
		{"scrapRatePct", "scraprate"},
		{"scrap_rate", "scraprate"},
		{"ID", "id"},
		{"code_id", "code"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeHeaderWithNoiseStrip(tt.input))
		})
	}
}

func TestTokenizeHeader(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"MachineID", []string{"machine", "id"}},
		{"scrap_rate_pct", []string{"scrap", "rate", "pct"}},
		{"QCDept", []string{"qc", "dept"}},
		{"getHTTPResponse", []string{"get", "http", "response"}},
		{"Shift  Start", []string{"shift", "start"}},
		{"Line12", []string{"line12"}},
		{"OrderLines", []string{"order", "line"}},
		{"unit_costs", []string{"unit", "cost"}},
		{"Status", []string{"status"}},
		{"hrs", []string{"hrs"}},
		{"", nil},
		{"--", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, TokenizeHeader(tt.input))
		})
	}
}
