package models

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxUsernameLength = 150
	maxEmailLength    = 254

	msgRequired        = "This field is required."
	msgBlank           = "This field may not be blank."
	msgUsernameTooLong = "Ensure this field has no more than 150 characters."
	msgUsernameChars   = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	msgEmail           = "Enter a valid email address."
	MsgUsernameTaken   = "A user with that username already exists."
)

var usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate checks the registration fields. Email is optional.
func (u *User) Validate(password string) error {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)

	verr := NewValidationError()
	switch {
	case u.Username == "":
		verr.Add("username", msgRequired)
	case utf8.RuneCountInString(u.Username) > maxUsernameLength:
		verr.Add("username", msgUsernameTooLong)
	case !usernameRe.MatchString(u.Username):
		verr.Add("username", msgUsernameChars)
	}

	if u.Email != "" {
		at := strings.LastIndex(u.Email, "@")
		if at <= 0 || at == len(u.Email)-1 || len(u.Email) > maxEmailLength {
			verr.Add("email", msgEmail)
		}
	}

	if password == "" {
		verr.Add("password", msgBlank)
	}
	return verr.OrNil()
}
