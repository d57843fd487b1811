package components

import "github.com/yohamta/donburi"

// SignData is a piece of world text placed by the layout. Signs never collide.
type SignData struct {
	Text  string
	X, Y  float64 // top-left of the first line
	Small bool    // commentary rather than a heading
}

var Sign = donburi.NewComponentType[SignData]()
