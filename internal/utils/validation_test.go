package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFileName(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid export name",
			file:    "long.xlsx",
			wantErr: false,
		},
		{
			name:    "empty name",
			file:    "",
			wantErr: true,
			errMsg:  "file name cannot be empty",
		},
		{
			name:    "name too long",
			file:    strings.Repeat("a", 101),
			wantErr: true,
			errMsg:  "file name too long (max 100 characters)",
		},
		{
			name:    "path traversal",
			file:    "..",
			wantErr: true,
			errMsg:  "file name contains invalid characters",
		},
		{
			name:    "markup",
			file:    "long<script>.csv",
			wantErr: true,
			errMsg:  "file name contains invalid characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFileName(tt.file)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.errMsg, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSeriesName(t *testing.T) {
	tests := []struct {
		name    string
		series  string
		wantErr bool
	}{
		{"fertility", "Fertility rate, total (births per woman)", false},
		{"percent sign", "Urban population (% of total population)", false},
		{"blank", "   ", true},
		{"too long", strings.Repeat("a", 201), true},
		{"script tag", "<script>alert(1)</script>", true},
		{"sql comment", "Urban population'; --", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeriesName(tt.series)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateYear(t *testing.T) {
	available := []int{1974, 2000, 2023}

	assert.NoError(t, ValidateYear(2000, available))
	assert.EqualError(t, ValidateYear(1999, available), "year must be between 1974 and 2023 and present in the dataset")
	assert.Error(t, ValidateYear(2000, nil))
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "Urban population", SanitizeInput("  <b>Urban population</b> "))
	assert.Equal(t, "Population, total", SanitizeInput("Population, total"))
}

func TestValidateAndSanitizeSeriesName(t *testing.T) {
	got, err := ValidateAndSanitizeSeriesName(" Population, total ")
	assert.NoError(t, err)
	assert.Equal(t, "Population, total", got)

	_, err = ValidateAndSanitizeSeriesName("")
	assert.Error(t, err)
}
