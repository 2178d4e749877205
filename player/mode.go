package player

// Mode is the player's exclusive movement mode. Exactly one is active; the
// timers and flags that belong to a mode are only meaningful while it is.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeKnockback
	ModeSpin
	ModeDownAttack
	ModeDownAttackWait
	ModeThrow
	ModeSlide
	ModeClimb

	modeCount
)

var modeNames = [modeCount]string{
	"normal",
	"knockback",
	"spin",
	"down-attack",
	"down-attack-wait",
	"throw",
	"slide",
	"climb",
}

func (m Mode) String() string {
	if m >= modeCount {
		return "invalid"
	}
	return modeNames[m]
}

func bit(m Mode) uint16 { return 1 << m }

// transitions[from] is the set of modes reachable from `from`. Knockback is
// reachable from everywhere except itself.
var transitions = [modeCount]uint16{
	ModeNormal: bit(ModeKnockback) | bit(ModeSpin) | bit(ModeDownAttack) |
		bit(ModeThrow) | bit(ModeSlide) | bit(ModeClimb),
	ModeKnockback:      bit(ModeNormal),
	ModeSpin:           bit(ModeNormal) | bit(ModeKnockback) | bit(ModeClimb),
	ModeDownAttack:     bit(ModeNormal) | bit(ModeKnockback) | bit(ModeDownAttackWait),
	ModeDownAttackWait: bit(ModeNormal) | bit(ModeKnockback),
	ModeThrow:          bit(ModeNormal) | bit(ModeKnockback) | bit(ModeClimb),
	ModeSlide:          bit(ModeNormal) | bit(ModeKnockback) | bit(ModeSpin),
	ModeClimb:          bit(ModeNormal) | bit(ModeKnockback) | bit(ModeThrow),
}

// CanTransition reports whether from -> to is a legal mode change. Staying in
// the same mode is always legal.
func CanTransition(from, to Mode) bool {
	if from >= modeCount || to >= modeCount {
		return false
	}
	return from == to || transitions[from]&bit(to) != 0
}

// airborne modes share the jump state.
func (m Mode) keepsLocomotion() bool {
	return m == ModeNormal || m == ModeSpin
}
