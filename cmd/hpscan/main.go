// cmd/hpscan/main.go
package main

import (
	"hpscan/internal/app"
	"hpscan/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
