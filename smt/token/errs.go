package token

import "errors"

var (
	ErrVariable = errors.New("invalid variable token")
	ErrRelation = errors.New("invalid relation symbol")
)
