package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_Individual(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid digits only", "11144477735", true},
		{"valid with mask", "111.444.777-35", true},
		{"valid other number", "52998224725", true},
		{"valid masked with spaces", " 123.456.789-09 ", true},
		{"wrong second check digit", "11144477736", false},
		{"wrong first check digit", "11144477745", false},
		{"first check digit wraps to zero", "12345678909", true},
		{"ten digits", "1114447773", false},
		{"twelve digits", "111444777350", false},
		{"empty", "", false},
		{"letters only", "abcdefghijk", false},
		{"all zeros", "00000000000", false},
		{"all ones", "11111111111", false},
		{"masked repeated digits", "999.999.999-99", false},
		{"organization number as individual", "11444777000161", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.input, Individual))
		})
	}
}

func TestValidate_Organization(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid digits only", "11444777000161", true},
		{"valid with mask", "11.444.777/0001-61", true},
		{"valid other number", "11222333000181", true},
		{"valid with leading zero", "04.252.011/0001-10", true},
		{"wrong last digit", "11444777000162", false},
		{"wrong first check digit", "11444777000171", false},
		{"thirteen digits", "1144477700016", false},
		{"fifteen digits", "114447770001610", false},
		{"empty", "", false},
		{"all sevens", "77777777777777", false},
		{"individual number as organization", "11144477735", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.input, Organization))
		})
	}
}

func TestValidate_RepeatedDigitsAlwaysRejected(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		digit := string(d)
		assert.False(t, Validate(strings.Repeat(digit, 11), Individual), "individual %s", digit)
		assert.False(t, Validate(strings.Repeat(digit, 14), Organization), "organization %s", digit)
	}
}

func TestValidate_SingleDigitMutationRejected(t *testing.T) {
	valid := []struct {
		number string
		kind   Kind
	}{
		{"11144477735", Individual},
		{"52998224725", Individual},
		{"11444777000161", Organization},
		{"11222333000181", Organization},
		{"04252011000110", Organization},
	}

	for _, v := range valid {
		t.Run(v.number, func(t *testing.T) {
			if !Validate(v.number, v.kind) {
				t.Fatalf("fixture %s must be valid", v.number)
			}
			for i := 0; i < len(v.number); i++ {
				for c := byte('0'); c <= '9'; c++ {
					if c == v.number[i] {
						continue
					}
					mutated := []byte(v.number)
					mutated[i] = c
					assert.False(t, Validate(string(mutated), v.kind), "mutation %s", mutated)
				}
			}
		})
	}
}

func TestValidate_PunctuationIgnored(t *testing.T) {
	pairs := []struct {
		formatted string
		kind      Kind
	}{
		{"123.456.789-09", Individual},
		{"111 444 777 36", Individual},
		{"11.444.777/0001-61", Organization},
		{"11-444-777-0001-62", Organization},
	}

	for _, p := range pairs {
		assert.Equal(t, Validate(Normalize(p.formatted), p.kind), Validate(p.formatted, p.kind), p.formatted)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "12345678909", Normalize("123.456.789-09"))
	assert.Equal(t, "", Normalize("abc"))
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "2", Normalize("１2\x00"))
	assert.Equal(t, "0110", Normalize("0 1\t1\n0"))
}

func TestValidWrappers(t *testing.T) {
	for _, raw := range []string{"111.444.777-35", "11144477736", "11.444.777/0001-61", "11444777000162", ""} {
		assert.Equal(t, Validate(raw, Individual), ValidIndividual(raw), raw)
		assert.Equal(t, Validate(raw, Organization), ValidOrganization(raw), raw)
	}
	assert.True(t, ValidIndividual("111.444.777-35"))
	assert.True(t, ValidOrganization("11.444.777/0001-61"))
	assert.False(t, ValidOrganization("111.444.777-35"))
}

func TestKindFromFlag(t *testing.T) {
	assert.Equal(t, Organization, KindFromFlag(true))
	assert.Equal(t, Individual, KindFromFlag(false))
	assert.Equal(t, "CNPJ", Organization.Label())
	assert.Equal(t, "CPF", Individual.Label())
	assert.Equal(t, 14, Organization.Length())
	assert.Equal(t, 11, Individual.Length())
}

func TestFormat(t *testing.T) {
	got, ok := Format("11144477735", Individual)
	assert.True(t, ok)
	assert.Equal(t, "111.444.777-35", got)

	got, ok = Format("11.444.777/0001-61", Organization)
	assert.True(t, ok)
	assert.Equal(t, "11.444.777/0001-61", got)

	_, ok = Format("1234", Individual)
	assert.False(t, ok)
}

func TestMask(t *testing.T) {
	assert.Equal(t, "*********35", Mask("111.444.777-35"))
	assert.Equal(t, "**", Mask("7"))
}
