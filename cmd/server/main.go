package main

import (
	"os"

	"inner-story/backend/internal/app"
)

// @title           Inner Story API
// @version         1.0
// @description     Multi-provider AI chat proxy for reflective journaling, with a versioned story document store.
// @BasePath        /api
func main() {
	os.Exit(app.Run())
}
