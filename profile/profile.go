// Package profile loads declarative button and axis bindings from TOML,
// YAML, or JSON files and applies them to a controller. A profile names
// actions; the program applying it supplies what each action does.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/ploiu/padmap/controller"
)

// ButtonActions names the actions bound to one button. An empty name
// leaves that slot unbound.
type ButtonActions struct {
	Press   string `json:"press" yaml:"press" toml:"press"`
	Release string `json:"release" yaml:"release" toml:"release"`
}

// AxisActions names the actions bound to the three states of one axis.
type AxisActions struct {
	Positive string `json:"positive" yaml:"positive" toml:"positive"`
	Negative string `json:"negative" yaml:"negative" toml:"negative"`
	Release  string `json:"release" yaml:"release" toml:"release"`
}

// Profile maps device control ids to named actions. Keys are decimal
// button/axis ids; they stay strings here because none of the supported
// file formats can key a table by integer.
type Profile struct {
	Buttons map[string]ButtonActions `json:"buttons" yaml:"buttons" toml:"buttons"`
	Axes    map[string]AxisActions   `json:"axes" yaml:"axes" toml:"axes"`
}

// Load reads and parses the profile at path. The format is chosen by file
// extension: .toml, .yaml/.yml, or .json.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Profile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &p)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &p)
	case ".json":
		err = json.Unmarshal(data, &p)
	default:
		return nil, fmt.Errorf("profile: unsupported format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("profile: parse %s: %w", path, err)
	}
	return &p, nil
}

// ActionNames returns every distinct non-empty action name the profile
// references, sorted.
func (p *Profile) ActionNames() []string {
	seen := make(map[string]bool)
	for _, b := range p.Buttons {
		seen[b.Press] = true
		seen[b.Release] = true
	}
	for _, a := range p.Axes {
		seen[a.Positive] = true
		seen[a.Negative] = true
		seen[a.Release] = true
	}
	delete(seen, "")
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Apply binds every profile entry to the controller, resolving action
// names through actions. All ids and names are validated before any
// binding is made, so a bad entry never leaves the controller half-bound.
func (p *Profile) Apply(c *controller.Controller, actions map[string]controller.Command) error {
	type buttonBind struct {
		id             int
		press, release controller.Command
	}
	type axisBind struct {
		id                          int
		positive, negative, release controller.Command
	}

	var buttons []buttonBind
	for key, b := range p.Buttons {
		id, err := parseID("button", key)
		if err != nil {
			return err
		}
		press, err := resolve(actions, b.Press)
		if err != nil {
			return err
		}
		release, err := resolve(actions, b.Release)
		if err != nil {
			return err
		}
		buttons = append(buttons, buttonBind{id: id, press: press, release: release})
	}

	var axes []axisBind
	for key, a := range p.Axes {
		id, err := parseID("axis", key)
		if err != nil {
			return err
		}
		positive, err := resolve(actions, a.Positive)
		if err != nil {
			return err
		}
		negative, err := resolve(actions, a.Negative)
		if err != nil {
			return err
		}
		release, err := resolve(actions, a.Release)
		if err != nil {
			return err
		}
		axes = append(axes, axisBind{id: id, positive: positive, negative: negative, release: release})
	}

	for _, b := range buttons {
		c.MapButton(b.id, b.press, b.release)
	}
	for _, a := range axes {
		c.MapAxis(a.id, a.positive, a.negative, a.release)
	}
	return nil
}

func parseID(kind, key string) (int, error) {
	id, err := strconv.Atoi(key)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("profile: invalid %s id %q", kind, key)
	}
	return id, nil
}

// resolve returns the command for an action name. An empty name resolves
// to nil, which the controller binds to its shared no-op.
func resolve(actions map[string]controller.Command, name string) (controller.Command, error) {
	if name == "" {
		return nil, nil
	}
	cmd, ok := actions[name]
	if !ok {
		return nil, fmt.Errorf("profile: unknown action %q", name)
	}
	return cmd, nil
}
