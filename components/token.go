package components

import "github.com/yohamta/donburi"

type TokenData struct {
	Label     string
	Collected bool
}

var Token = donburi.NewComponentType[TokenData]()
