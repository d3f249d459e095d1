package handler

import (
	"time"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

type createCatRequest struct {
	CatName   string  `json:"cat_name" validate:"required,min=2"`
	Weight    float64 `json:"weight"   validate:"required,gt=0"`
	Birthdate string  `json:"birthdate" validate:"required"`
	// Owner is deliberately absent: the creator always owns the cat.
}

type updateCatRequest struct {
	CatName   *string  `json:"cat_name,omitempty"  validate:"omitempty,min=2"`
	Weight    *float64 `json:"weight,omitempty"    validate:"omitempty,gt=0"`
	Birthdate *string  `json:"birthdate,omitempty"`
}

type transferCatRequest struct {
	Owner string `json:"owner" validate:"required"`
}

type catResponse struct {
	ID        string        `json:"id"`
	CatName   string        `json:"cat_name"`
	Weight    float64       `json:"weight"`
	Filename  string        `json:"filename"`
	Birthdate time.Time     `json:"birthdate"`
	Location  domain.Point  `json:"location"`
	Owner     *userResponse `json:"owner,omitempty"`
}

func toCatResponse(cat *domain.Cat) catResponse {
	resp := catResponse{
		ID:        cat.ID,
		CatName:   cat.CatName,
		Weight:    cat.Weight,
		Filename:  cat.Filename,
		Birthdate: cat.Birthdate,
		Location:  cat.Location,
	}
	if cat.OwnerProfile != nil {
		owner := toUserResponse(*cat.OwnerProfile)
		resp.Owner = &owner
	}
	return resp
}

func toCatResponses(cats []*domain.Cat) []catResponse {
	out := make([]catResponse, 0, len(cats))
	for _, cat := range cats {
		out = append(out, toCatResponse(cat))
	}
	return out
}

// birthdateLayout is the wire format for the birthdate form field.
const birthdateLayout = "2006-01-02"
