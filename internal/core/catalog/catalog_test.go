package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/bestiary/internal/core/prototype"
)

func TestDefault_BuildAndSpawn(t *testing.T) {
	c := Default()
	reg := prototype.NewRegistry(nil)
	require.NoError(t, c.Build(reg))
	assert.Equal(t, []string{"MonsterA", "MonsterB"}, reg.Names())

	spawned, err := c.Spawn(reg)
	require.NoError(t, err)
	require.Len(t, spawned, 4)

	want := []Spawned{
		{Label: "Monster A", Monster: prototype.NewMonster(80, 10, 5)},
		{Label: "Monster B", Monster: prototype.NewSpecialMonster(150, 15, 8, "Ice Beam")},
		{Label: "Monster C", Monster: prototype.NewMonster(120, 12, 6)},
		{Label: "Monster D", Monster: prototype.NewSpecialMonster(180, 20, 7, "Thunderbolt")},
	}
	assert.Equal(t, want, spawned)

	// Spawning never touches the registered prototypes.
	base, err := reg.Create("MonsterB", nil)
	require.NoError(t, err)
	assert.Equal(t, prototype.NewSpecialMonster(150, 15, 7, "Fireball"), base)
}

func TestLoadJSON(t *testing.T) {
	src := `{
  "prototypes": [
    {"name": "Slime", "kind": "monster", "attributes": {"health": 20, "attack_power": 2, "speed": 1}}
  ],
  "spawns": [
    {"prototype": "Slime", "overrides": {"speed": 3}}
  ]
}`
	c, err := LoadJSON(strings.NewReader(src))
	require.NoError(t, err)

	reg := prototype.NewRegistry(nil)
	require.NoError(t, c.Build(reg))
	spawned, err := c.Spawn(reg)
	require.NoError(t, err)
	require.Len(t, spawned, 1)
	assert.Equal(t, "Slime", spawned[0].Label)
	assert.Equal(t, prototype.NewMonster(20, 2, 3), spawned[0].Monster)
}

func TestLoadYAML_UnknownField(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("prototypes: []\nmonsters: []\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "cat.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("prototypes:\n  - name: Bat\n    kind: monster\n"), 0o600))
	c, err := LoadFile(yamlPath)
	require.NoError(t, err)
	require.Len(t, c.Prototypes, 1)
	assert.Equal(t, "Bat", c.Prototypes[0].Name)

	jsonPath := filepath.Join(dir, "cat.JSON")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"prototypes":[{"name":"Rat","kind":"special"}]}`), 0o600))
	c, err = LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "special", c.Prototypes[0].Kind)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{`), 0o600))
	_, err = LoadFile(broken)
	assert.ErrorContains(t, err, "broken.json")

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		wantErr error
	}{
		{
			name:    "unknown kind",
			catalog: Catalog{Prototypes: []PrototypeSpec{{Name: "X", Kind: "golem"}}},
			wantErr: ErrUnknownKind,
		},
		{
			name:    "missing name",
			catalog: Catalog{Prototypes: []PrototypeSpec{{Kind: "monster"}}},
			wantErr: ErrMissingName,
		},
		{
			name: "duplicate",
			catalog: Catalog{Prototypes: []PrototypeSpec{
				{Name: "X", Kind: "monster"},
				{Name: "X", Kind: "special"},
			}},
			wantErr: ErrDuplicatePrototype,
		},
		{
			name: "unknown attribute",
			catalog: Catalog{Prototypes: []PrototypeSpec{
				{Name: "X", Kind: "monster", Attributes: map[string]any{"special_ability": "Bite"}},
			}},
			wantErr: prototype.ErrUnknownAttribute,
		},
		{
			name: "bad value",
			catalog: Catalog{Prototypes: []PrototypeSpec{
				{Name: "X", Kind: "monster", Attributes: map[string]any{"health": "plenty"}},
			}},
			wantErr: prototype.ErrInvalidAttribute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := prototype.NewRegistry(nil)
			reg.Register("keep", prototype.NewMonster(1, 1, 1))

			err := tt.catalog.Build(reg)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []string{"keep"}, reg.Names())
		})
	}
}

func TestSpawn_StopsAtFirstFailure(t *testing.T) {
	c := Default()
	c.Spawns = append(c.Spawns, SpawnSpec{Label: "Ghost", Prototype: "MonsterC"})

	reg := prototype.NewRegistry(nil)
	require.NoError(t, c.Build(reg))

	spawned, err := c.Spawn(reg)
	assert.Nil(t, spawned)

	var ce *prototype.CreationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "MonsterC", ce.Name)
	assert.ErrorIs(t, err, prototype.ErrPrototypeNotFound)
}

func TestKinds(t *testing.T) {
	assert.Equal(t, []string{prototype.KindMonster, prototype.KindSpecialMonster}, Kinds())
}
