// cmd/magmerge/main.go
package main

import (
	"magmerge/internal/app"
	"magmerge/internal/appshell"
)

func main() {
	appshell.Main(app.Run)
}
