package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "billun/internal/errors"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		param   string
		want    uint
		wantErr bool
	}{
		{"valid", "42", 42, false},
		{"zero", "0", 0, true},
		{"negative", "-1", 0, true},
		{"not a number", "abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			c.SetParamNames("id")
			c.SetParamValues(tt.param)

			got, err := parseID(c)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	str := func(s string) *string { return &s }

	got, err := parseDate("d", nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseDate("d", str("2025-06-01"))
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))

	got, err = parseDate("d", str("2025-06-01T10:30:00+02:00"))
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)))

	got, err = parseDate("d", str("2025-06-01T10:30:00"))
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)))

	got, err = parseDate("d", str("2025-06-01T10:30:00.250"))
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 6, 1, 10, 30, 0, 250_000_000, time.UTC)))

	_, err = parseDate("date_signalement", str("01/06/2025"))
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "date_signalement")
}

func TestUserRequest_LegacyNames(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"canonical", `{"prenom":"Léa"}`, "Léa"},
		{"accented", `{"prénom":"Léa"}`, "Léa"},
		{"canonical wins", `{"prenom":"Léa","prénom":"Other"}`, "Léa"},
		{"null canonical wins", `{"prenom":null,"prénom":"Other"}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UserRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			in := req.toInput()
			require.True(t, in.Prenom.IsSet())
			got, _ := in.Prenom.Get()
			assert.Equal(t, tt.want, got)
			assert.False(t, in.Societe.IsSet())
		})
	}
}

func TestMaterielRequest_ToInput(t *testing.T) {
	var req MaterielRequest
	require.NoError(t, json.Unmarshal([]byte(`{"statut":"en panne","date_controle_technique":null,"options":null}`), &req))

	in, err := req.toInput()
	require.NoError(t, err)
	assert.Equal(t, "en panne", *in.Statut)
	assert.True(t, in.DateControleTechnique.IsNull())
	assert.True(t, in.Options.IsNull())
	assert.False(t, in.ResponsableID.IsSet())
	assert.Nil(t, in.Identifiant)

	req = MaterielRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"date_controle_technique":"2025-06-01T10:00:00","responsable_id":4}`), &req))
	in, err = req.toInput()
	require.NoError(t, err)
	date, ok := in.DateControleTechnique.Get()
	require.True(t, ok)
	assert.True(t, date.Equal(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, uint(4), *in.ResponsableID.Ptr())

	require.NoError(t, json.Unmarshal([]byte(`{"date_controle_technique":"soon"}`), &req))
	_, err = req.toInput()
	assert.Error(t, err)
}
