package errors_test

import (
	"fmt"

	"github.com/matzehuels/colplot/pkg/errors"
)

func ExampleNew() {
	err := errors.New(errors.ErrCodeInvalidInput, "negative column index: %d", -1)
	fmt.Println(err)
	fmt.Println("Code:", errors.GetCode(err))
	// Output:
	// INVALID_INPUT: negative column index: -1
	// Code: INVALID_INPUT
}

func ExampleWrap() {
	// Wrap a low-level failure with a storage code for the caller
	cause := fmt.Errorf("connection refused")
	err := errors.Wrap(errors.ErrCodeStore, cause, "list figures")
	fmt.Println(err)

	// Is matches the outermost code in the chain
	fmt.Println("Store error:", errors.Is(err, errors.ErrCodeStore))
	// Output:
	// STORE_ERROR: list figures: connection refused
	// Store error: true
}

func ExampleUserMessage() {
	// UserMessage strips the code prefix for terminal output
	err := errors.New(errors.ErrCodeScenarioNotFound, "unknown scenario %q", "waves")
	fmt.Println(errors.UserMessage(err))
	// Output:
	// unknown scenario "waves"
}
