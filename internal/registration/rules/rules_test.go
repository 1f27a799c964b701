package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"regform/pkg/document"
)

func TestEmailValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"ana@example.com", true},
		{"ana.souza-1@mail.example.com.br", true},
		{"first_last@sub.domain.io", true},
		{"", false},
		{"ana@", false},
		{"@example.com", false},
		{"ana@example", false},
		{"ana@example.c", false},
		{"ana@example.museum", false},
		{"ana souza@example.com", false},
		{"ana+tag@example.com", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EmailValid(tt.input), tt.input)
	}
}

func TestNameValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"Ana Souza", true},
		{"José da Silva", true},
		{"Zoë Ørsted", true},
		{"Ana", false},
		{"", false},
		{"Ana  Souza", false},
		{" Ana Souza", false},
		{"Ana Souza ", false},
		{"Ana Souza3", false},
		{"Ana-Maria Souza", false},
		{"Ana\tSouza", true},
		{"Ana\vSouza", true},
		{"Ana\u00a0Souza", true},
		{"Ana\u2003Souza", true},
		{"Ana\u3000Souza", true},
		{"Ana\ufeffSouza", true},
		{"Ana\u00a0\u00a0Souza", false},
		{"Ana\u200bSouza", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NameValid(tt.input), tt.input)
	}
}

func TestPhoneValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"(11) 91234-5678", true},
		{"(21) 3456-7890", true},
		{"11 91234-5678", false},
		{"(11)91234-5678", false},
		{"(11) 912345678", false},
		{"(1) 91234-5678", false},
		{"(11) 123-4567", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PhoneValid(tt.input), tt.input)
	}
}

func TestDocumentValid(t *testing.T) {
	assert.True(t, DocumentValid("111.444.777-35", document.Individual))
	assert.False(t, DocumentValid("111.444.777-35", document.Organization))
	assert.True(t, DocumentValid("11.444.777/0001-61", document.Organization))
}

func TestDateValid_Individual(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"turns 18 today", "15/06/2006", true},
		{"turns 18 tomorrow", "16/06/2006", false},
		{"turned 18 last month", "15/05/2006", true},
		{"birthday later this year", "01/07/2006", false},
		{"well over 18", "01/01/1980", true},
		{"seventeen", "15/06/2007", false},
		{"wrong separator", "15-06-2000", false},
		{"month 13", "15/13/2000", false},
		{"day 32", "32/01/2000", false},
		{"day zero", "00/01/2000", false},
		{"two digit year", "15/06/00", false},
		{"iso format", "2000-06-15", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateValid(tt.input, document.Individual, now))
		})
	}
}

func TestDateValid_Organization(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"opened years ago", "01/02/2010", true},
		{"opened two days ago", "13/06/2024", true},
		{"opened yesterday", "14/06/2024", false},
		{"opened today", "15/06/2024", false},
		{"opens in the future", "20/06/2024", false},
		{"impossible date rolls forward", "31/02/2024", true},
		{"malformed", "1/6/2024", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateValid(tt.input, document.Organization, now))
		})
	}
}

func TestAge(t *testing.T) {
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 24, Age(1, 3, 2000, now))
	assert.Equal(t, 23, Age(2, 3, 2000, now))
	assert.Equal(t, 24, Age(29, 2, 2000, now))
}
