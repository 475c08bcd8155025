// Package level reads level descriptions from TOML files.
//
// A level file lists the map size, the player spawn and the named objects
// of the level:
//
//	size = [2000, 720]
//
//	[player]
//	pos = [40, 200]
//	size = [30, 40]
//	color = [220, 60, 60]
//
//	[[obstacles]]
//	name = "ground"
//	pos = [0, 40]
//	size = [2000, 40]
//	color = [120, 72, 0]
//
//	[[switches]]
//	name = "lever"
//	pos = [300, 80]
//	size = [20, 20]
//	color = [200, 200, 0]
//	[switches.commands]
//	close = ["color 0 200 0", "remove door", "state open"]
//
// Positions are the top-left corner of each box in a y-up frame with the
// origin at the bottom-left of the map.
package level

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/phanxgames/platformer"
)

// ErrInvalidMap is wrapped by every validation failure.
var ErrInvalidMap = errors.New("level: invalid map")

// Decode reads and validates a level from r. Unknown keys are rejected so
// that typos in hand-written files do not silently drop objects.
func Decode(r io.Reader) (*platformer.Map, error) {
	var m platformer.Map
	md, err := toml.NewDecoder(r).Decode(&m)
	if err != nil {
		return nil, fmt.Errorf("level: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ErrInvalidMap, undecoded)
	}
	if err := Validate(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads the level file at path.
func Load(path string) (*platformer.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Dir is a directory of level files named <n>.toml. It implements
// platformer.LevelLoader.
type Dir string

// Path returns the file path of level n.
func (d Dir) Path(n int) string {
	return filepath.Join(string(d), strconv.Itoa(n)+".toml")
}

// Load reads level n.
func (d Dir) Load(n int) (*platformer.Map, error) {
	return Load(d.Path(n))
}

var _ platformer.LevelLoader = Dir("")

// Validate reports every structural problem in m. The returned error wraps
// ErrInvalidMap.
func Validate(m *platformer.Map) error {
	v := validator{names: map[string]string{platformer.PlayerName: "player"}}

	if m.Size[0] <= 0 || m.Size[1] <= 0 {
		v.fail("map size %v must be positive", m.Size)
	}
	if m.Player.Size[0] <= 0 || m.Player.Size[1] <= 0 {
		v.fail("player size %v must be positive", m.Player.Size)
	}

	for _, group := range []struct {
		kind  string
		boxes []platformer.BoxSpawn
	}{
		{"target", m.Targets},
		{"coin", m.Coins},
		{"switch", m.Switches},
		{"obstacle", m.Obstacles},
	} {
		for i, b := range group.boxes {
			where := fmt.Sprintf("%s %d", group.kind, i)
			v.name(where, b.Name)
			v.size(where, b.Size)
			v.commands(where, b.Commands)
		}
	}

	for _, group := range []struct {
		kind   string
		tracks []platformer.TrackSpawn
	}{
		{"monster", m.Monsters},
		{"elevator", m.Elevators},
	} {
		for i, s := range group.tracks {
			where := fmt.Sprintf("%s %d", group.kind, i)
			v.name(where, s.Name)
			v.size(where, s.Size)
			v.commands(where, s.Commands)
			if len(s.Track) == 0 {
				v.fail("%s %q: empty track", group.kind, s.Name)
			}
		}
	}

	for i, d := range m.Descriptions {
		if d.Font.Size <= 0 {
			v.fail("description %d: font size %d must be positive", i, d.Font.Size)
		}
	}
	return v.err()
}

type validator struct {
	names map[string]string
	errs  []error
}

func (v *validator) fail(format string, args ...any) {
	v.errs = append(v.errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidMap}, args...)...))
}

func (v *validator) err() error {
	return errors.Join(v.errs...)
}

func (v *validator) name(where, name string) {
	if name == "" {
		v.fail("%s: missing name", where)
		return
	}
	if prev, ok := v.names[name]; ok {
		v.fail("%s: name %q already used by %s", where, name, prev)
		return
	}
	v.names[name] = where
}

func (v *validator) size(where string, size [2]int) {
	if size[0] <= 0 || size[1] <= 0 {
		v.fail("%s: size %v must be positive", where, size)
	}
}

func (v *validator) commands(where string, src map[string][]string) {
	for state, cmds := range platformer.ParseCommands(src) {
		for _, cmd := range cmds {
			if err := checkCommand(cmd); err != nil {
				v.fail("%s: state %q: %v", where, state, err)
			}
		}
	}
}

// checkCommand verifies the verb and arguments of one command.
func checkCommand(cmd platformer.Command) error {
	args := cmd[1:]
	switch cmd[0] {
	case "state", "remove":
		if len(args) != 1 {
			return fmt.Errorf("%s takes 1 argument, got %d", cmd[0], len(args))
		}
	case "color":
		if len(args) != 3 {
			return fmt.Errorf("color takes 3 arguments, got %d", len(args))
		}
		for _, a := range args {
			if n, err := strconv.Atoi(a); err != nil || n < 0 || n > 255 {
				return fmt.Errorf("color component %q not in 0-255", a)
			}
		}
	case "show", "hide":
		if len(args) != 0 {
			return fmt.Errorf("%s takes no arguments", cmd[0])
		}
	default:
		return fmt.Errorf("unknown command %q", cmd[0])
	}
	return nil
}
