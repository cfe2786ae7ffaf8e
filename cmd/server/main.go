package main

import (
	"os"

	"modelarena/internal/app"
)

// @title           Model Arena API
// @version         1.0
// @description     Chat-completion proxy with multi-model comparison and a small account store.
// @BasePath        /api
func main() {
	os.Exit(app.Run())
}
