package languages

import (
	"testing"

	"github.com/dmitrijs2005/recruitkit/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "fr", want: "fr"},
		{in: " SV ", want: "sv"},
		{in: "zh-CN", want: "zh-cn"},
		{in: "haw", want: "haw"},
		{in: "xx", wantErr: true},
		{in: "", wantErr: true},
		{in: "french", wantErr: true},
		{in: "fr-fr", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidLanguage)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Code())
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.NotPanics(t, func() { MustParse("de") })
	assert.Panics(t, func() { MustParse("klingon") })
}

func TestSupported_SortedAndComplete(t *testing.T) {
	all := Supported()
	require.NotEmpty(t, all)
	assert.IsNonDecreasing(t, all)
	for _, c := range []string{"en", "sv", "fr", "zh-tw", "iw", "he", "jw"} {
		assert.Contains(t, all, c)
	}
}

func TestLanguage_Name(t *testing.T) {
	assert.Equal(t, "French", MustParse("fr").Name())
	assert.Equal(t, "Swedish", MustParse("sv").Name())
	assert.NotEmpty(t, MustParse("hmn").Name())
}
