package config

import "fmt"

// InvalidAmountError is returned when a numeric option is not a valid integer amount.
type InvalidAmountError struct {
	Name   string
	Value  string
	Reason string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Name, e.Value, e.Reason)
}

func NewInvalidAmountError(name, value, reason string) *InvalidAmountError {
	return &InvalidAmountError{Name: name, Value: value, Reason: reason}
}

// MissingEnvVarError is returned when a required credential is not set.
type MissingEnvVarError struct {
	Name string
}

func (e *MissingEnvVarError) Error() string {
	return fmt.Sprintf("environment variable %s is not set", e.Name)
}

func NewMissingEnvVarError(name string) *MissingEnvVarError {
	return &MissingEnvVarError{Name: name}
}

// UnknownNetworkError is returned when a network name is not in the registry.
type UnknownNetworkError struct {
	Name  string
	Known []string
}

func (e *UnknownNetworkError) Error() string {
	return fmt.Sprintf("unknown network %q, expected one of %v", e.Name, e.Known)
}

func NewUnknownNetworkError(name string, known []string) *UnknownNetworkError {
	return &UnknownNetworkError{Name: name, Known: known}
}
