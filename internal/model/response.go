package model

import "net/http"

const (
	MsgSuccess       = "Success"
	MsgAlreadyExists = "User is already existed"
	MsgNotFoundByID  = "Couldn't find for given ID"
)

// Response is the envelope every user service operation returns.
// Code is the authoritative signal, Message is advisory text.
type Response[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Value   T      `json:"value"`
}

// OK builds a 200 envelope
func OK[T any](value T) Response[T] {
	return Response[T]{Code: http.StatusOK, Message: MsgSuccess, Value: value}
}

// NotFound builds a 404 envelope with the given message
func NotFound[T any](message string, value T) Response[T] {
	return Response[T]{Code: http.StatusNotFound, Message: message, Value: value}
}
