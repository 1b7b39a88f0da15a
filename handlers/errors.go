package handlers

import "fmt"

func errInvalidPayload(err error) error {
	return fmt.Errorf("invalid action payload: %v", err)
}

func errInvalidAction(action string) error {
	return fmt.Errorf("invalid memory action: %q", action)
}
