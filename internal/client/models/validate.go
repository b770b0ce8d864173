package models

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

var versionRe = regexp.MustCompile(`^[0-9A-Za-z][0-9A-Za-z._+-]*$`)

// Validate checks the fields the chosen registration phase sends, as they
// will be sent: surrounding whitespace does not count.
func (r ModelRegistration) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Version = strings.TrimSpace(r.Version)
	r.Author = strings.TrimSpace(r.Author)
	r.Description = strings.TrimSpace(r.Description)

	fields := []*validation.FieldRules{
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Version, validation.Required, validation.Length(1, 50), validation.Match(versionRe)),
		validation.Field(&r.Author, validation.Length(0, 200)),
	}
	if !r.Restricted {
		fields = append(fields,
			validation.Field(&r.Description, validation.Length(0, 2000)),
			validation.Field(&r.Labels, validation.By(validateLabels)),
		)
	}
	return validation.ValidateStruct(&r, fields...)
}

func validateLabels(value interface{}) error {
	labels, _ := value.([]string)
	for _, l := range labels {
		if l == "" {
			return ErrIncorrectLabel
		}
	}
	return nil
}

func (u NewUser) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Username, validation.Required, validation.Length(1, 100)),
		validation.Field(&u.Password, validation.Required, validation.Length(1, 200)),
	)
}

func (p PasswordChange) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.OldPassword, validation.Required),
		validation.Field(
			&p.NewPassword,
			validation.Required,
			validation.Length(1, 200),
			validation.By(differsFrom(p.OldPassword)),
		),
	)
}

func differsFrom(old string) validation.RuleFunc {
	return func(value interface{}) error {
		if s, _ := value.(string); s == old {
			return errors.New("must differ from the current password")
		}
		return nil
	}
}
