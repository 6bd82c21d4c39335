package core

// Action is a semantic input, decoupled from the physical key that produced it.
type Action uint8

const (
	ActionNone Action = iota
	ActionTumbleLeft
	ActionTumbleRight
	ActionTumbleForward
	ActionTumbleBack
	ActionHint
	ActionRestart
	ActionPause
	ActionConfirm
	ActionBack
	ActionQuit

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:          "None",
	ActionTumbleLeft:    "TumbleLeft",
	ActionTumbleRight:   "TumbleRight",
	ActionTumbleForward: "TumbleForward",
	ActionTumbleBack:    "TumbleBack",
	ActionHint:          "Hint",
	ActionRestart:       "Restart",
	ActionPause:         "Pause",
	ActionConfirm:       "Confirm",
	ActionBack:          "Back",
	ActionQuit:          "Quit",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions triggered during one frame.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns a frame holding the given actions.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks a as triggered.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear drops every action.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Actions lists the triggered actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}
