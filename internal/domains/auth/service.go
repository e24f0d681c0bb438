package auth

import "context"

type Service interface {
	// Login verifies the credentials and returns a signed token plus the
	// user projection for the response body.
	Login(ctx context.Context, req *LoginReq) (string, *UserInfo, error)
}
