//go:build tools
// +build tools

// Tool dependencies. Never compiled into the hub; the blank import keeps
// mockgen pinned in go.mod so `go generate ./...` works on a fresh checkout.
package chatter_hub

import (
	_ "go.uber.org/mock/mockgen"
)
