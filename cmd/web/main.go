package main

import "github.com/ommivivekanandsai/EduFolio/internal/app"

func main() {
	app.Run()
}
