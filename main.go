package main

import (
	"socketPaint/cmd/app"
)

func main() {
	app.GetApp().LetsGo()
}
