package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveDown
	ActionJump
	ActionDash
	ActionRestart
	ActionPause
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:      "none",
	ActionMoveLeft:  "left",
	ActionMoveRight: "right",
	ActionMoveDown:  "down",
	ActionJump:      "jump",
	ActionDash:      "dash",
	ActionRestart:   "restart",
	ActionPause:     "pause",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction maps a script or binding name onto an action.
func ParseAction(name string) (ActionID, bool) {
	for id, n := range actionNames {
		if n == name && ActionID(id) != ActionNone {
			return ActionID(id), true
		}
	}
	return ActionNone, false
}
