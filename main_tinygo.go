//go:build tinygo

package main

import (
	"badge/app"
	"badge/hal"
)

func main() {
	app.Run(hal.New(), app.DefaultConfig())
}
