package validate

import (
	"errors"
	"fmt"
)

const (
	MinUsernameLen = 3
	MaxUsernameLen = 64
	// MaxPasswordLen is bcrypt's input limit.
	MaxPasswordLen = 72
)

func SignUpForm(name, password string) error {

	var errs = []error{}

	errs = append(errs, Username(name))

	errs = append(errs, Password(password))

	return errors.Join(errs...)
}

func Password(password string) error {
	l := len(password)
	switch {
	case l == 0:
		return errors.New("empty password")
	case l > MaxPasswordLen:
		return fmt.Errorf("password too long; max %d characters", MaxPasswordLen)
	}
	return nil
}

func Username(username string) error {
	switch l := len(username); {
	case l == 0:
		return errors.New("empty username")
	case l < MinUsernameLen:
		return fmt.Errorf("username too short; min %d characters", MinUsernameLen)
	case l > MaxUsernameLen:
		return fmt.Errorf("username too long; max %d characters", MaxUsernameLen)
	}
	return nil
}
