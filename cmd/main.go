package main

import (
	"log"

	"carecompanion/config"
	"carecompanion/remote"
	"carecompanion/routes"
	"carecompanion/services"
	"carecompanion/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitRekognition()

	rc := remote.NewClient(config.DB)
	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push disabled: %v", err)
		push = nil
	}

	confirm := services.NewConfirmBus(config.DB, hub, push)
	sessions := services.NewSessionManager(rc, confirm)
	pictures := services.NewPictureService(rc)

	r := routes.SetupRouter(sessions, confirm, hub, push, pictures)
	r.Run(":8080")
}
