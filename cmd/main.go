package main

import (
	"backend/config"
	"backend/routes"
	"backend/services"
)

func main() {
	config.InitDB()

	hub := services.NewRealtimeHub()
	services.InitAlertBus(config.DB, hub)

	r := routes.SetupRouter(hub)
	r.Run(":8081")
}
