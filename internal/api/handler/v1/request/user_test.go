package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateUserRequest_Validate(t *testing.T) {
	tests := []struct {
		username string
		password string
		ok       bool
	}{
		{username: "admin", password: "secret", ok: true},
		{username: "ops.team-1", password: "secret", ok: true},
		{username: "a1_", password: "x", ok: true},
		{username: "ab", password: "secret"},
		{username: "123456", password: "secret"},
		{username: "has space", password: "secret"},
		{username: "this-username-is-way-too-long-to-keep", password: "secret"},
		{username: "admin", password: ""},
		{username: "", password: "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			err := (&CreateUserRequest{Username: tt.username, Password: tt.password}).Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
