// cmd/repeatscan/main.go
package main

import (
	"repeatscan/internal/app"
	"repeatscan/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
