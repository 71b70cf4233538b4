package handlers

import (
	"errors"

	"github.com/dkovacs/codeshare/pkg/wire"
)

// SocketHandshake is the validated Socket.IO handshake auth payload.
type SocketHandshake struct {
	Token    string
	UserName string
}

// ValidateSocketAuthPayload validates the Socket.IO handshake auth payload.
func ValidateSocketAuthPayload(auth wire.SocketAuthPayload) (SocketHandshake, error) {
	if auth.Token == "" {
		return SocketHandshake{}, errors.New("Missing authentication token")
	}

	return SocketHandshake{
		Token:    auth.Token,
		UserName: auth.UserName,
	}, nil
}
