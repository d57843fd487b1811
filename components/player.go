package components

import (
	"github.com/automoto/leapfrog/controller"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Controller *controller.Controller
	Input      controller.Input

	SpawnX, SpawnY float64 // centre of the body at spawn
}

var Player = donburi.NewComponentType[PlayerData]()
