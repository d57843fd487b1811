package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ContactData records which sides were blocked during the last integration.
type ContactData struct {
	Down, Up, Left, Right bool
}

type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	AllowGravity bool

	Blocked        ContactData
	Pushed         ContactData // sides a moving platform pushed this frame
	OnGround       *resolv.Object
	IgnorePlatform *resolv.Object // one-way platform being dropped through
}

// Land marks the actor as standing on obj.
func (p *PhysicsData) Land(obj *resolv.Object) {
	p.Blocked.Down = true
	p.OnGround = obj
	if p.IgnorePlatform != nil && p.IgnorePlatform != obj {
		p.IgnorePlatform = nil
	}
}

// Stop clears velocity and every contact, as after a teleport.
func (p *PhysicsData) Stop() {
	p.SpeedX, p.SpeedY = 0, 0
	p.Blocked = ContactData{}
	p.Pushed = ContactData{}
	p.OnGround = nil
	p.IgnorePlatform = nil
}

var Physics = donburi.NewComponentType[PhysicsData]()
