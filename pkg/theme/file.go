package theme

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/renameio/v2"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/spark/pkg/errors"
	"github.com/go-drift/spark/pkg/graphics"
)

// SchemaVersion is the theme file version written by Export. Files are
// accepted when their major version matches.
const SchemaVersion = "1.0.0"

// document is the YAML layout of a theme file. Every group is optional;
// missing tokens keep the value of the base theme.
type document struct {
	Version string                `yaml:"version"`
	Name    string                `yaml:"name,omitempty"`
	Base    string                `yaml:"base,omitempty"`
	Colors  map[string]colorEntry `yaml:"colors,omitempty"`
	Radii   map[string]float64    `yaml:"radii,omitempty"`
	Spacing map[string]float64    `yaml:"spacing,omitempty"`
	Dims    map[string]float64    `yaml:"dims,omitempty"`
	Border  map[string]float64    `yaml:"border,omitempty"`
}

// colorEntry is either a single color ("surface: '#FFFFFF'") or a role
// mapping ("main: {color: ..., on_color: ...}").
type colorEntry struct {
	Single string            `yaml:"-"`
	Role   map[string]string `yaml:"-"`
}

func (e *colorEntry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&e.Single)
	case yaml.MappingNode:
		return node.Decode(&e.Role)
	default:
		return fmt.Errorf("line %d: expected a color or a color role", node.Line)
	}
}

func (e colorEntry) MarshalYAML() (any, error) {
	if e.Role != nil {
		return e.Role, nil
	}
	return e.Single, nil
}

func roleFields(t *ColorToken) map[string]*graphics.Color {
	return map[string]*graphics.Color{
		"color":        &t.Color,
		"on_color":     &t.OnColor,
		"container":    &t.Container,
		"on_container": &t.OnContainer,
		"variant":      &t.Variant,
	}
}

func (c *Colors) roles() map[string]*ColorToken {
	return map[string]*ColorToken{
		"main":    &c.Main,
		"support": &c.Support,
		"accent":  &c.Accent,
		"basic":   &c.Basic,
		"success": &c.Success,
		"alert":   &c.Alert,
		"error":   &c.Error,
		"info":    &c.Info,
		"neutral": &c.Neutral,
	}
}

func (c *Colors) singles() map[string]*graphics.Color {
	return map[string]*graphics.Color{
		"background":         &c.Background,
		"on_background":      &c.OnBackground,
		"surface":            &c.Surface,
		"on_surface":         &c.OnSurface,
		"surface_inverse":    &c.SurfaceInverse,
		"on_surface_inverse": &c.OnSurfaceInverse,
		"outline":            &c.Outline,
		"outline_high":       &c.OutlineHigh,
	}
}

func (r *Radii) fields() map[string]*float64 {
	return map[string]*float64{
		"none": &r.None, "small": &r.Small, "medium": &r.Medium,
		"large": &r.Large, "xlarge": &r.XLarge, "full": &r.Full,
	}
}

func (s *Spacing) fields() map[string]*float64 {
	return map[string]*float64{
		"none": &s.None, "xsmall": &s.XSmall, "small": &s.Small, "medium": &s.Medium,
		"large": &s.Large, "xlarge": &s.XLarge, "xxlarge": &s.XXLarge,
	}
}

func (d *Dims) fields() map[string]*float64 {
	return map[string]*float64{
		"dim1": &d.Dim1, "dim2": &d.Dim2, "dim3": &d.Dim3, "dim4": &d.Dim4, "dim5": &d.Dim5,
	}
}

func (b *BorderWidths) fields() map[string]*float64 {
	return map[string]*float64{
		"none": &b.None, "small": &b.Small, "medium": &b.Medium, "large": &b.Large,
	}
}

// Parse decodes a theme document. Tokens missing from data keep the value
// of the base theme named by the "base" key (light by default).
func Parse(data []byte) (*Theme, error) {
	const op = "theme.Parse"

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.E(op, errors.KindTheme, err)
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, errors.E(op, errors.KindTheme, err)
	}

	var th *Theme
	switch strings.ToLower(doc.Base) {
	case "", "light":
		th = DefaultLight()
	case "dark":
		th = DefaultDark()
	default:
		return nil, errors.E(op, errors.KindTheme,
			&errors.TokenError{Token: "base", Value: doc.Base, Reason: "must be light or dark"})
	}
	if doc.Name != "" {
		th.Name = doc.Name
	}

	if err := applyColors(&th.Colors, doc.Colors); err != nil {
		return nil, errors.E(op, errors.KindTheme, err)
	}
	groups := []struct {
		name   string
		values map[string]float64
		fields map[string]*float64
		max    float64
	}{
		{"radii", doc.Radii, th.Radii.fields(), 0},
		{"spacing", doc.Spacing, th.Spacing.fields(), 0},
		{"dims", doc.Dims, th.Dims.fields(), 1},
		{"border", doc.Border, th.Border.fields(), 0},
	}
	for _, g := range groups {
		if err := applyNumbers(g.name, g.values, g.fields, g.max); err != nil {
			return nil, errors.E(op, errors.KindTheme, err)
		}
	}
	return th, nil
}

func checkVersion(version string) error {
	if version == "" {
		return &errors.TokenError{Token: "version", Reason: "missing"}
	}
	v := "v" + strings.TrimPrefix(version, "v")
	if !semver.IsValid(v) {
		return &errors.TokenError{Token: "version", Value: version, Reason: "not a semantic version"}
	}
	if semver.Major(v) != semver.Major("v"+SchemaVersion) {
		return &errors.TokenError{
			Token:  "version",
			Value:  version,
			Reason: fmt.Sprintf("unsupported major version, want %s", semver.Major("v"+SchemaVersion)),
		}
	}
	return nil
}

func applyColors(colors *Colors, entries map[string]colorEntry) error {
	roles := colors.roles()
	singles := colors.singles()
	for _, name := range sortedKeys(entries) {
		entry := entries[name]
		path := "colors." + name
		if role, ok := roles[name]; ok {
			if entry.Role == nil {
				// A bare color on a role sets its base color only.
				if err := setColor(path, entry.Single, &role.Color); err != nil {
					return err
				}
				continue
			}
			fields := roleFields(role)
			for _, key := range sortedKeys(entry.Role) {
				dst, ok := fields[key]
				if !ok {
					return &errors.TokenError{Token: path + "." + key, Reason: "unknown color field"}
				}
				if err := setColor(path+"."+key, entry.Role[key], dst); err != nil {
					return err
				}
			}
			continue
		}
		dst, ok := singles[name]
		if !ok {
			return &errors.TokenError{Token: path, Reason: "unknown color"}
		}
		if entry.Role != nil {
			return &errors.TokenError{Token: path, Reason: "expected a single color"}
		}
		if err := setColor(path, entry.Single, dst); err != nil {
			return err
		}
	}
	return nil
}

func setColor(path, raw string, dst *graphics.Color) error {
	parsed, err := graphics.ParseColor(raw)
	if err != nil {
		return &errors.TokenError{Token: path, Value: raw, Reason: err.Error()}
	}
	*dst = parsed
	return nil
}

// applyNumbers copies values into fields. A positive max bounds the
// values; every value must be non-negative.
func applyNumbers(group string, values map[string]float64, fields map[string]*float64, max float64) error {
	for _, name := range sortedKeys(values) {
		path := group + "." + name
		dst, ok := fields[name]
		if !ok {
			return &errors.TokenError{Token: path, Reason: "unknown token"}
		}
		v := values[name]
		if v < 0 {
			return &errors.TokenError{Token: path, Value: fmt.Sprint(v), Reason: "must not be negative"}
		}
		if max > 0 && v > max {
			return &errors.TokenError{Token: path, Value: fmt.Sprint(v), Reason: fmt.Sprintf("must not exceed %v", max)}
		}
		*dst = v
	}
	return nil
}

// Load reads and parses a theme file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.E("theme.Load", errors.KindTheme, err).WithPath(path)
	}
	th, err := Parse(data)
	if err != nil {
		var se *errors.SparkError
		if errors.As(err, &se) {
			return nil, se.WithPath(path)
		}
		return nil, err
	}
	return th, nil
}

// Export encodes every token of th as a theme document.
func Export(th *Theme) ([]byte, error) {
	base := "light"
	if th.Brightness == BrightnessDark {
		base = "dark"
	}
	doc := document{
		Version: SchemaVersion,
		Name:    th.Name,
		Base:    base,
		Colors:  map[string]colorEntry{},
	}

	colors := th.Colors
	for name, role := range colors.roles() {
		entry := colorEntry{Role: map[string]string{}}
		for key, value := range roleFields(role) {
			entry.Role[key] = value.Hex()
		}
		doc.Colors[name] = entry
	}
	for name, value := range colors.singles() {
		doc.Colors[name] = colorEntry{Single: value.Hex()}
	}

	copyNumbers := func(fields map[string]*float64) map[string]float64 {
		out := make(map[string]float64, len(fields))
		for k, v := range fields {
			out[k] = *v
		}
		return out
	}
	radii, spacing, dims, border := th.Radii, th.Spacing, th.Dims, th.Border
	doc.Radii = copyNumbers(radii.fields())
	doc.Spacing = copyNumbers(spacing.fields())
	doc.Dims = copyNumbers(dims.fields())
	doc.Border = copyNumbers(border.fields())

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, errors.E("theme.Export", errors.KindTheme, err)
	}
	if err := enc.Close(); err != nil {
		return nil, errors.E("theme.Export", errors.KindTheme, err)
	}
	return buf.Bytes(), nil
}

// Save writes th to path atomically.
func Save(th *Theme, path string) error {
	data, err := Export(th)
	if err != nil {
		return err
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return errors.E("theme.Save", errors.KindTheme, err).WithPath(path)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
