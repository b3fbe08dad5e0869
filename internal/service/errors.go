package service

import (
	"database/sql"
	"errors"
)

var (
	ErrSearchInvalid     = errors.New("search query is invalid")
	ErrSearchInProgress  = errors.New("search already in progress")
	ErrGuideNotFound     = errors.New("guide not found")
	ErrLikeNotFound      = errors.New("guide is not liked")
	ErrInvalidEmail      = errors.New("email address is invalid")
	ErrAlreadySubscribed = errors.New("email already subscribed")
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
