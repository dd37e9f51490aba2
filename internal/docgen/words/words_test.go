package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToWords(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "Zero"},
		{5, "Five"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{105, "One Hundred and Five"},
		{999, "Nine Hundred and Ninety Nine"},
		{1000, "One Thousand"},
		{15800, "Fifteen Thousand Eight Hundred"},
		{30000, "Thirty Thousand"},
		{100000, "One Lakh"},
		{1234567, "Twelve Lakh Thirty Four Thousand Five Hundred and Sixty Seven"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred and Seventy Eight"},
		{250000000, "Twenty Five Crore"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ToWords(tc.amount), "amount %d", tc.amount)
	}
}

func TestComma(t *testing.T) {
	assert.Equal(t, "0", Comma(0))
	assert.Equal(t, "800", Comma(800))
	assert.Equal(t, "15,800", Comma(15800))
	assert.Equal(t, "12,345,678", Comma(12345678))
}
