package main

import "github.com/NLynch19/Handover/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustLoadRegister()

	app.MustListenAndServeHTTP()
}
