package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+7 (701) 234-56-78", "77012345678"},
		{"87012345678", "77012345678"},
		{"77012345678", "77012345678"},
		{"7012345678", "77012345678"},
		{"8 701 234 56 78", "77012345678"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePhone(tc.in), "input %q", tc.in)
	}
}

func TestPhoneVariantsCoverLegacyForms(t *testing.T) {
	variants := PhoneVariants("+7 701 234 56 78")

	assert.Contains(t, variants, "77012345678")
	assert.Contains(t, variants, "+77012345678")
	assert.Contains(t, variants, "87012345678")
}
