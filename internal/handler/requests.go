package handler

import (
	"time"

	"billun/internal/optional"
	"billun/internal/service"
)

// UserRequest is the body of user creation, registration and update requests.
// Absent fields are left untouched on update. An explicit null clears the
// optional profile fields and is ignored on the others.
//
// The accented spellings are accepted for older clients. When both spellings are
// sent the unaccented one wins.
type UserRequest struct {
	Email     *string                `json:"email" validate:"omitempty,email,max=255"`
	Password  *string                `json:"password"`
	Role      *string                `json:"role" validate:"omitempty,max=50"`
	Societe   optional.Value[string] `json:"societe" validate:"omitempty,max=255" swaggertype:"string"`
	Prenom    optional.Value[string] `json:"prenom" validate:"omitempty,max=255" swaggertype:"string"`
	Nom       optional.Value[string] `json:"nom" validate:"omitempty,max=255" swaggertype:"string"`
	Telephone optional.Value[string] `json:"telephone" validate:"omitempty,max=50" swaggertype:"string"`

	LegacySociete   optional.Value[string] `json:"société" swaggerignore:"true"`
	LegacyPrenom    optional.Value[string] `json:"prénom" swaggerignore:"true"`
	LegacyTelephone optional.Value[string] `json:"téléphone" swaggerignore:"true"`
}

func (r *UserRequest) toInput() service.UserInput {
	return service.UserInput{
		Email:     r.Email,
		Password:  r.Password,
		Role:      r.Role,
		Societe:   firstSet(r.Societe, r.LegacySociete),
		Prenom:    firstSet(r.Prenom, r.LegacyPrenom),
		Nom:       r.Nom,
		Telephone: firstSet(r.Telephone, r.LegacyTelephone),
	}
}

func firstSet(values ...optional.Value[string]) optional.Value[string] {
	for _, v := range values {
		if v.IsSet() {
			return v
		}
	}
	return optional.Value[string]{}
}

// TokenRequest holds the form encoded credentials of the token endpoint.
type TokenRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

// TokenResponse is returned on successful authentication.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MaterielRequest is the body of materiel creation and update requests.
// A null date_controle_technique, options or responsable_id clears the column.
type MaterielRequest struct {
	Identifiant           *string                `json:"identifiant" validate:"omitempty,max=100"`
	Plaque                *string                `json:"plaque" validate:"omitempty,max=50"`
	TypeMateriel          *string                `json:"type_materiel" validate:"omitempty,max=100"`
	Statut                *string                `json:"statut" validate:"omitempty,max=50"`
	Kilometrage           *int                   `json:"kilometrage" validate:"omitempty,gte=0"`
	DateControleTechnique optional.Value[string] `json:"date_controle_technique" swaggertype:"string" example:"2025-06-01"`
	Options               optional.Value[string] `json:"options" swaggertype:"string"`
	ResponsableID         optional.Value[uint]   `json:"responsable_id" validate:"omitempty,gt=0" swaggertype:"integer"`
}

func (r *MaterielRequest) toInput() (service.MaterielInput, error) {
	date, err := parseNullableDate("date_controle_technique", r.DateControleTechnique)
	if err != nil {
		return service.MaterielInput{}, err
	}
	return service.MaterielInput{
		Identifiant:           r.Identifiant,
		Plaque:                r.Plaque,
		TypeMateriel:          r.TypeMateriel,
		Statut:                r.Statut,
		Kilometrage:           r.Kilometrage,
		DateControleTechnique: date,
		Options:               r.Options,
		ResponsableID:         r.ResponsableID,
	}, nil
}

// AnomalieRequest is the body of anomalie creation and update requests.
type AnomalieRequest struct {
	MaterielID      *uint                  `json:"materiel_id" validate:"omitempty,gt=0"`
	Description     *string                `json:"description"`
	PhotoURL        optional.Value[string] `json:"photo_url" validate:"omitempty,max=1024" swaggertype:"string"`
	DateSignalement *string                `json:"date_signalement"`
}

func (r *AnomalieRequest) toInput() (service.AnomalieInput, error) {
	date, err := parseDate("date_signalement", r.DateSignalement)
	if err != nil {
		return service.AnomalieInput{}, err
	}
	return service.AnomalieInput{
		MaterielID:      r.MaterielID,
		Description:     r.Description,
		PhotoURL:        r.PhotoURL,
		DateSignalement: date,
	}, nil
}

// APKLinkRequest asks for the mobile application link to be mailed.
type APKLinkRequest struct {
	Email   string `json:"email" validate:"required,email"`
	APKLink string `json:"apk_link" validate:"required,url"`
}

func parseNullableDate(field string, value optional.Value[string]) (optional.Value[time.Time], error) {
	raw, ok := value.Get()
	if !ok {
		if value.IsNull() {
			return optional.Null[time.Time](), nil
		}
		return optional.Value[time.Time]{}, nil
	}
	t, err := parseDate(field, &raw)
	if err != nil {
		return optional.Value[time.Time]{}, err
	}
	return optional.Some(*t), nil
}
