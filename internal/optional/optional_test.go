package optional

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patch struct {
	Options     Value[string] `json:"options"`
	Responsable Value[uint]   `json:"responsable_id"`
}

func TestValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantSet  bool
		wantNull bool
		want     string
	}{
		{"absent", `{}`, false, false, ""},
		{"null", `{"options":null}`, true, true, ""},
		{"value", `{"options":"gps"}`, true, false, "gps"},
		{"empty string", `{"options":""}`, true, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p patch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			assert.Equal(t, tt.wantSet, p.Options.IsSet())
			assert.Equal(t, tt.wantNull, p.Options.IsNull())
			got, ok := p.Options.Get()
			assert.Equal(t, tt.wantSet && !tt.wantNull, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	var p patch
	assert.Error(t, json.Unmarshal([]byte(`{"responsable_id":"three"}`), &p))
}

func TestValue_Apply(t *testing.T) {
	current := "gps"
	dst := &current

	Value[string]{}.Apply(&dst)
	require.NotNil(t, dst)
	assert.Equal(t, "gps", *dst)

	Some("hayon").Apply(&dst)
	require.NotNil(t, dst)
	assert.Equal(t, "hayon", *dst)

	Null[string]().Apply(&dst)
	assert.Nil(t, dst)
}

func TestValue_Helpers(t *testing.T) {
	assert.False(t, Value[uint]{}.IsSet())
	assert.True(t, Null[uint]().IsSet())

	assert.Nil(t, Null[int]().Ptr())
	assert.Nil(t, Null[int]().Any())
	assert.Equal(t, 7, Some(7).Any())

	data, err := json.Marshal(struct {
		A Value[string] `json:"a"`
		B Value[string] `json:"b"`
	}{A: Some("x"), B: Null[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x","b":null}`, string(data))
}
