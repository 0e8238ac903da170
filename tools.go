//go:build tools

package tools

// This file pins CLI tools that are not compiled into the binary.
// goose is declared in go.mod's tool block; cmd/migrate runs the same
// commands over the embedded migrations. moq generates the *_mock_test.go
// files from the go:generate lines in the package tests.

import (
	_ "github.com/matryer/moq"
)
