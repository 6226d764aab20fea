package validator

import (
	"fmt"
	"regexp"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 64
	minPasswordLength = 8
	maxPasswordLength = 128

	errUsernameEmptyFmt     = "username cannot be empty"
	errUsernameLengthFmt    = "username must be between %d and %d characters"
	errUsernameCharsFmt     = "username may only contain letters, digits, '.', '_' and '-'"
	errPasswordMinLengthFmt = "password must be at least %d characters"
	errPasswordMaxLengthFmt = "password must not exceed %d characters"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

func Username(username string) error {
	if username == "" {
		return fmt.Errorf(errUsernameEmptyFmt)
	}

	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return fmt.Errorf(errUsernameLengthFmt, minUsernameLength, maxUsernameLength)
	}

	if !usernameRegex.MatchString(username) {
		return fmt.Errorf(errUsernameCharsFmt)
	}

	return nil
}

func Password(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf(errPasswordMinLengthFmt, minPasswordLength)
	}

	if len(password) > maxPasswordLength {
		return fmt.Errorf(errPasswordMaxLengthFmt, maxPasswordLength)
	}

	return nil
}
