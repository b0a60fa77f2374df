package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

// 3 to 32 word characters, dots or dashes, and not made of digits only.
const usernamePattern = `^(?!\d+$)[A-Za-z0-9_.-]{3,32}$`

var (
	usernameExp        = regexp2.MustCompile(usernamePattern, regexp2.None)
	errInvalidUsername = errors.New("must be 3 to 32 letters, digits, '.', '_' or '-' and not only digits")
)

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (req *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required, validation.By(validUsername)),
		validation.Field(&req.Password, validation.Required),
	)
}

func validUsername(value interface{}) error {
	s, _ := value.(string)
	ok, err := usernameExp.MatchString(s)
	if err != nil {
		return err
	}
	if !ok {
		return errInvalidUsername
	}

	return nil
}
