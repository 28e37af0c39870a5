package tally

import (
	"errors"
	"fmt"
)

var RevisionConflict = errors.New("revision-conflict")

type UninitializedAccessError struct{}

func (e UninitializedAccessError) Error() string {
	return "counter accessed before a container was published"
}

func UninitializedAccess() error {
	return UninitializedAccessError{}
}

type AlreadyPublishedError struct{}

func (e AlreadyPublishedError) Error() string {
	return "a counter container has already been published"
}

func AlreadyPublished() error {
	return AlreadyPublishedError{}
}

type InvalidAmountError struct {
	Amount int
}

func (e InvalidAmountError) Error() string {
	return fmt.Sprintf("amount must not be negative, received %d", e.Amount)
}

func InvalidAmount(amount int) error {
	return InvalidAmountError{Amount: amount}
}

type UnknownChangeError struct {
	Type ChangeType
}

func (e UnknownChangeError) Error() string {
	return fmt.Sprintf("no reducer registered for change %s", e.Type)
}

func UnknownChange(changeType ChangeType) error {
	return UnknownChangeError{Type: changeType}
}

func UnexpectedCommand(command Command) error {
	return fmt.Errorf("unexpected command %s", CommandNameOf(command))
}
