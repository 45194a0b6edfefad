package model

import "errors"

var (
	ErrValidation        = errors.New("validation error")     // 400
	ErrEquipmentNotFound = errors.New("equipment not found")  // 404
	ErrCustomerNotFound  = errors.New("customer not found")   // 404
	ErrCommitFailed      = errors.New("inventory commit failed")
	ErrInvalidArgument   = errors.New("invalid argument")
)
