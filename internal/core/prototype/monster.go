package prototype

import "fmt"

const (
	KindMonster        = "monster"
	KindSpecialMonster = "special"
)

var (
	_ Prototype = (*Monster)(nil)
	_ Prototype = (*SpecialMonster)(nil)
)

// Monster is the plain variant: three numeric stats.
type Monster struct {
	Health      int `json:"health" yaml:"health"`
	AttackPower int `json:"attack_power" yaml:"attack_power"`
	Speed       int `json:"speed" yaml:"speed"`
}

func NewMonster(health, attackPower, speed int) *Monster {
	return &Monster{Health: health, AttackPower: attackPower, Speed: speed}
}

var monsterSetters = map[string]func(m *Monster, v any) error{
	"health": func(m *Monster, v any) (err error) {
		m.Health, err = toIntKeep(m.Health, v)
		return
	},
	"attack_power": func(m *Monster, v any) (err error) {
		m.AttackPower, err = toIntKeep(m.AttackPower, v)
		return
	},
	"speed": func(m *Monster, v any) (err error) {
		m.Speed, err = toIntKeep(m.Speed, v)
		return
	},
}

func (m *Monster) Clone() Prototype {
	c := *m
	return &c
}

func (m *Monster) Kind() string { return KindMonster }

func (m *Monster) Attributes() []Attribute {
	return []Attribute{
		{Key: "health", Label: "Health", Value: m.Health},
		{Key: "attack_power", Label: "Attack Power", Value: m.AttackPower},
		{Key: "speed", Label: "Speed", Value: m.Speed},
	}
}

func (m *Monster) Set(key string, value any) error {
	return m.set(KindMonster, key, value)
}

func (m *Monster) set(kind, key string, value any) error {
	setter, ok := monsterSetters[key]
	if !ok {
		return fmt.Errorf("%w: %q on %s", ErrUnknownAttribute, key, kind)
	}
	if err := setter(m, value); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidAttribute, key, err)
	}
	return nil
}

// SpecialMonster extends Monster with a named special ability.
type SpecialMonster struct {
	Monster        `yaml:",inline"`
	SpecialAbility string `json:"special_ability" yaml:"special_ability"`
}

func NewSpecialMonster(health, attackPower, speed int, ability string) *SpecialMonster {
	return &SpecialMonster{
		Monster:        Monster{Health: health, AttackPower: attackPower, Speed: speed},
		SpecialAbility: ability,
	}
}

func (s *SpecialMonster) Clone() Prototype {
	c := *s
	return &c
}

func (s *SpecialMonster) Kind() string { return KindSpecialMonster }

func (s *SpecialMonster) Attributes() []Attribute {
	return append(s.Monster.Attributes(),
		Attribute{Key: "special_ability", Label: "Special Ability", Value: s.SpecialAbility})
}

func (s *SpecialMonster) Set(key string, value any) error {
	if key != "special_ability" {
		return s.Monster.set(KindSpecialMonster, key, value)
	}
	ability, err := toString(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidAttribute, key, err)
	}
	s.SpecialAbility = ability
	return nil
}

// toIntKeep leaves the current value in place when v is rejected.
func toIntKeep(cur int, v any) (int, error) {
	i, err := toInt(v)
	if err != nil {
		return cur, err
	}
	return i, nil
}
