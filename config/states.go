package config

// StateID identifies the movement state shown for a body.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Running
	Jump
	Fall
	DoubleJump
	WallContact
)

var stateNames = map[StateID]string{
	StateNone:   "none",
	Idle:        "idle",
	Running:     "running",
	Jump:        "jump",
	Fall:        "fall",
	DoubleJump:  "double_jump",
	WallContact: "wall_contact",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
