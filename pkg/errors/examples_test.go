package errors_test

import (
	"fmt"

	"github.com/docforge/modmap/pkg/errors"
)

// Example demonstrates basic error creation and checking.
func Example() {
	// Create a not found error
	err := &errors.NotFoundError{
		Resource: "reflection",
		ID:       "42",
	}

	// Check error type
	if errors.IsNotFound(err) {
		fmt.Println("Resource not found")
	}

	// Output: Resource not found
}

// Example_validationError shows input validation errors.
func Example_validationError() {
	// Validate input
	pattern := ""
	if pattern == "" {
		err := &errors.ValidationError{
			Field:   "pattern",
			Value:   pattern,
			Message: "pattern cannot be empty",
		}
		fmt.Println(err.Error())
	}

	// Output: validation failed for field pattern: pattern cannot be empty
}

// Example_aPIError demonstrates API error handling.
func Example_aPIError() {
	// Simulate an API error from the description provider
	err := &errors.APIError{
		Provider:   "gemini",
		StatusCode: 429,
		Message:    "Rate limit exceeded",
	}

	// Check and handle specific error types
	switch err.StatusCode {
	case 429:
		fmt.Println("Rate limited - retry later")
	case 401:
		fmt.Println("Authentication failed")
	case 500:
		fmt.Println("Server error")
	}

	// Output: Rate limited - retry later
}

// Example_errorWrapping demonstrates error wrapping patterns.
func Example_errorWrapping() {
	// Original error
	originalErr := fmt.Errorf("no such file or directory")

	// Wrap with IO error
	ioErr := errors.WrapIO("read", "project.json", originalErr)

	// Wrap with parse error
	_ = &errors.ParseError{
		Format:  "json",
		File:    "project.json",
		Message: "failed to load project document",
		Err:     ioErr,
	}

	fmt.Println("Parse error occurred")

	// Output: Parse error occurred
}

// Example_errorChaining shows chained error handling.
func Example_errorChaining() {
	// Create a chain of errors
	baseErr := &errors.NotFoundError{
		Resource: "file",
		ID:       "project.json",
	}

	parseErr := &errors.ParseError{
		Format:  "json",
		File:    "project.json",
		Message: "failed to parse project",
		Err:     baseErr,
	}

	// Check through the chain
	if parseErr.Err != nil {
		if _, ok := parseErr.Err.(*errors.NotFoundError); ok {
			fmt.Println("File not found in parse chain")
		}
	}

	// Output: File not found in parse chain
}
