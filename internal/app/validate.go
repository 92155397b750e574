package app

import (
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"realestate_api/internal/domain"
)

// Field lengths mirror what the store accepts; values are trimmed before any
// check and the trimmed form is what gets persisted.
const (
	nameMinLen    = 2
	nameMaxLen    = 100
	addressMinLen = 5
	addressMaxLen = 200
	phoneMinLen   = 5
	phoneMaxLen   = 30
)

// ValidatePropertyInput checks a create/update payload and returns the
// trimmed copy that should be stored. It is pure and has no side effects.
func ValidatePropertyInput(in *domain.PropertyInput) (domain.PropertyInput, error) {
	if in == nil {
		return domain.PropertyInput{}, &domain.ValidationError{Message: "property data is required"}
	}
	out := domain.PropertyInput{
		OwnerID: strings.TrimSpace(in.OwnerID),
		Name:    strings.TrimSpace(in.Name),
		Address: strings.TrimSpace(in.Address),
		Price:   in.Price,
		Image:   strings.TrimSpace(in.Image),
	}
	if out.OwnerID == "" {
		return domain.PropertyInput{}, &domain.ValidationError{Field: "idOwner", Message: "owner id is required"}
	}
	if out.Name == "" {
		return domain.PropertyInput{}, &domain.ValidationError{Field: "name", Message: "name is required"}
	}
	if n := utf8.RuneCountInString(out.Name); n < nameMinLen || n > nameMaxLen {
		return domain.PropertyInput{}, &domain.ValidationError{Field: "name", Message: "name must be between 2 and 100 characters"}
	}
	if out.Address == "" {
		return domain.PropertyInput{}, &domain.ValidationError{Field: "address", Message: "address is required"}
	}
	if n := utf8.RuneCountInString(out.Address); n < addressMinLen || n > addressMaxLen {
		return domain.PropertyInput{}, &domain.ValidationError{Field: "address", Message: "address must be between 5 and 200 characters"}
	}
	if out.Price <= 0 {
		return domain.PropertyInput{}, &domain.ValidationError{Field: "price", Message: "price must be greater than 0"}
	}
	if out.Image == "" {
		return domain.PropertyInput{}, &domain.ValidationError{Field: "image", Message: "image is required"}
	}
	if !validURL(out.Image) {
		return domain.PropertyInput{}, &domain.ValidationError{Field: "image", Message: "image must be a valid URL"}
	}
	return out, nil
}

// ValidateOwnerInput checks an owner creation payload and returns the
// trimmed copy that should be stored.
func ValidateOwnerInput(in *domain.OwnerInput) (domain.OwnerInput, error) {
	if in == nil {
		return domain.OwnerInput{}, &domain.ValidationError{Message: "owner data is required"}
	}
	out := domain.OwnerInput{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
		Phone: strings.TrimSpace(in.Phone),
	}
	if out.Name == "" {
		return domain.OwnerInput{}, &domain.ValidationError{Field: "name", Message: "name is required"}
	}
	if n := utf8.RuneCountInString(out.Name); n < nameMinLen || n > nameMaxLen {
		return domain.OwnerInput{}, &domain.ValidationError{Field: "name", Message: "name must be between 2 and 100 characters"}
	}
	if out.Email == "" {
		return domain.OwnerInput{}, &domain.ValidationError{Field: "email", Message: "email is required"}
	}
	if _, err := mail.ParseAddress(out.Email); err != nil {
		return domain.OwnerInput{}, &domain.ValidationError{Field: "email", Message: "email must be a valid address"}
	}
	if out.Phone == "" {
		return domain.OwnerInput{}, &domain.ValidationError{Field: "phone", Message: "phone is required"}
	}
	if n := utf8.RuneCountInString(out.Phone); n < phoneMinLen || n > phoneMaxLen {
		return domain.OwnerInput{}, &domain.ValidationError{Field: "phone", Message: "phone must be between 5 and 30 characters"}
	}
	return out, nil
}

func validURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
