package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	PlayerFile  = "player.yaml"
	EnemiesFile = "enemies.yaml"
)

// LoadSpec decodes a prefab over def, so fields missing from the file keep
// their default values.
func LoadSpec[T any](filename string, def T) (T, error) {
	data, err := Load(filename)
	if err != nil {
		return def, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return decodeSpec(filename, data, def)
}

func decodeSpec[T any](filename string, data []byte, def T) (T, error) {
	spec := def
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return def, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// PlayerSpec holds the player's movement tuning. Speeds are pixels per tick,
// times are ticks.
type PlayerSpec struct {
	Name string `yaml:"name"`

	MoveSpeed    float64 `yaml:"move_speed"`
	RunMod       float64 `yaml:"run_mod"`
	Gravity      float64 `yaml:"gravity"`
	FrictionX    float64 `yaml:"friction_x"`
	FrictionY    float64 `yaml:"friction_y"`
	JumpSpeed    float64 `yaml:"jump_speed"`
	JumpSpeedMod float64 `yaml:"jump_speed_mod"`
	JumpTime     float64 `yaml:"jump_time"`
	JumpMargin   float64 `yaml:"jump_margin"`

	DoubleJumpTime  float64 `yaml:"double_jump_time"`
	DoubleJumpDelta float64 `yaml:"double_jump_delta"`
	DoubleJumpMin   float64 `yaml:"double_jump_min"`
	FlapGravity     float64 `yaml:"flap_gravity"`

	ClimbSpeed    float64 `yaml:"climb_speed"`
	ClimbJumpTime float64 `yaml:"climb_jump_time"`

	SlideTime  float64 `yaml:"slide_time"`
	SlideSpeed float64 `yaml:"slide_speed"`

	SpinRotation float64 `yaml:"spin_rotation"`
	SpinMax      int     `yaml:"spin_max"`

	DownAttackJump     float64 `yaml:"down_attack_jump"`
	DownAttackGravity  float64 `yaml:"down_attack_gravity"`
	DownAttackFriction float64 `yaml:"down_attack_friction"`
	DownAttackWait     float64 `yaml:"down_attack_wait"`

	RockSpeed float64 `yaml:"rock_speed"`
	RockJump  float64 `yaml:"rock_jump"`
	ThrowTime float64 `yaml:"throw_time"`

	KnockbackTime  float64 `yaml:"knockback_time"`
	KnockbackSpeed float64 `yaml:"knockback_speed"`
	InvulnTime     float64 `yaml:"invulnerability_time"`
	DeathTime      float64 `yaml:"death_time"`
	Health         int     `yaml:"health"`
}

func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		Name:               "player",
		MoveSpeed:          0.75,
		RunMod:             1.66667,
		Gravity:            3.0,
		FrictionX:          0.1,
		FrictionY:          0.15,
		JumpSpeed:          2.0,
		JumpSpeedMod:       0.25,
		JumpTime:           12,
		JumpMargin:         12,
		DoubleJumpTime:     30,
		DoubleJumpDelta:    -0.30,
		DoubleJumpMin:      -1.25,
		FlapGravity:        0.5,
		ClimbSpeed:         0.5,
		ClimbJumpTime:      10,
		SlideTime:          20,
		SlideSpeed:         3.0,
		SpinRotation:       16,
		SpinMax:            2,
		DownAttackJump:     -1.5,
		DownAttackGravity:  6.0,
		DownAttackFriction: 0.30,
		DownAttackWait:     30,
		RockSpeed:          3.0,
		RockJump:           -1.0,
		ThrowTime:          18,
		KnockbackTime:      30,
		KnockbackSpeed:     2.0,
		InvulnTime:         60,
		DeathTime:          90,
		Health:             3,
	}
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec(PlayerFile, DefaultPlayerSpec())
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// EnemySpec holds the tuning shared by every species.
type EnemySpec struct {
	DeathTime     float64 `yaml:"death_time"`
	Gravity       float64 `yaml:"gravity"`
	SpunGravity   float64 `yaml:"spun_gravity"`
	KnockdownTime float64 `yaml:"knockdown_time"`
	KnockdownJump float64 `yaml:"knockdown_jump"`
	StompBounce   float64 `yaml:"stomp_bounce"`
	SpinKnockback float64 `yaml:"spin_knockback"`
	ShootWait     float64 `yaml:"shoot_wait"`
}

func DefaultEnemySpec() EnemySpec {
	return EnemySpec{
		DeathTime:     30,
		Gravity:       2.0,
		SpunGravity:   4.0,
		KnockdownTime: 150,
		KnockdownJump: -2.5,
		StompBounce:   -3.0,
		SpinKnockback: 3.0,
		ShootWait:     60,
	}
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec(EnemiesFile, DefaultEnemySpec())
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
