package dispatch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchema(t *testing.T) {
	got, err := ParseSchema("muladd_cpp(Tensor a, Tensor b, float c) -> Tensor")
	require.NoError(t, err)

	want := Schema{
		Name: "muladd_cpp",
		Params: []Param{
			{Name: "a", Type: TypeTensor},
			{Name: "b", Type: TypeTensor},
			{Name: "c", Type: TypeFloat},
		},
		Return: TypeTensor,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseSchema mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSchemaVariants(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"noop() -> Tensor", "noop() -> Tensor"},
		{"  scale ( Tensor x , float ) ->Tensor ", "scale(Tensor x, float) -> Tensor"},
		{"ns::flag(bool on, int n) -> bool", "ns::flag(bool on, int n) -> bool"},
	}
	for _, tt := range cases {
		s, err := ParseSchema(tt.text)
		if assert.NoError(t, err, tt.text) {
			assert.Equal(t, tt.want, s.String())
		}
	}
}

func TestParseSchemaRoundTrip(t *testing.T) {
	text := "muladd_cpp(Tensor a, Tensor b, float c) -> Tensor"
	s, err := ParseSchema(text)
	require.NoError(t, err)
	assert.Equal(t, text, s.String())

	again, err := ParseSchema(s.String())
	require.NoError(t, err)
	assert.True(t, s.Equal(again))
}

func TestParseSchemaErrors(t *testing.T) {
	bad := []string{
		"muladd(Tensor a, Tensor b)",
		"muladd(Tensor a -> Tensor",
		"(Tensor a) -> Tensor",
		"1op(Tensor a) -> Tensor",
		"muladd(Matrix a) -> Tensor",
		"muladd(Tensor a, ) -> Tensor",
		"muladd(Tensor a b) -> Tensor",
		"muladd(Tensor a) -> Matrix",
		"a::b::c(Tensor a) -> Tensor",
	}
	for _, text := range bad {
		_, err := ParseSchema(text)
		assert.Error(t, err, text)
	}
}

func TestSchemaEqual(t *testing.T) {
	base, _ := ParseSchema("op(Tensor a, float c) -> Tensor")

	same, _ := ParseSchema("op(Tensor a, float c) -> Tensor")
	renamed, _ := ParseSchema("op(Tensor x, float c) -> Tensor")
	retyped, _ := ParseSchema("op(Tensor a, int c) -> Tensor")
	shorter, _ := ParseSchema("op(Tensor a) -> Tensor")

	assert.True(t, base.Equal(same))
	assert.False(t, base.Equal(renamed))
	assert.False(t, base.Equal(retyped))
	assert.False(t, base.Equal(shorter))
}

func TestTypeString(t *testing.T) {
	for _, typ := range []Type{TypeTensor, TypeFloat, TypeInt, TypeBool} {
		parsed, err := ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}
	assert.Equal(t, "Type(9)", Type(9).String())
}
