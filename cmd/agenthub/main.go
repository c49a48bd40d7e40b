package main

import "github.com/cleitonmarx/symbiont-agenthub/internal/app"

func main() {
	err := app.NewAgentHubApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
