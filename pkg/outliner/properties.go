package outliner

import (
	"slices"
	"strconv"
	"strings"

	"github.com/arthur-debert/outliner/pkg/errors"
)

// PropertyType is the value type of an operator property.
type PropertyType string

const (
	PropertyInt  PropertyType = "int"
	PropertyEnum PropertyType = "enum"
)

// PropertyDef declares an operator property.
type PropertyDef struct {
	Name        string
	Description string
	Type        PropertyType
	// Default is an int for PropertyInt and a string for PropertyEnum.
	Default interface{}
	// Min bounds int properties from below.
	Min int
	// Max bounds int properties from above when non-zero.
	Max int
	// Items lists the identifiers accepted by enum properties.
	Items []string
}

// Properties carries the property values of one operator call.
type Properties struct {
	values map[string]interface{}
	raw    map[string]string
	set    map[string]bool
}

// NewProperties creates an empty property set.
func NewProperties() *Properties {
	return &Properties{
		values: make(map[string]interface{}),
		raw:    make(map[string]string),
		set:    make(map[string]bool),
	}
}

// SetInt sets an int property.
func (p *Properties) SetInt(name string, v int) *Properties {
	p.values[name] = v
	p.set[name] = true
	return p
}

// SetEnum sets an enum property by identifier.
func (p *Properties) SetEnum(name, v string) *Properties {
	p.values[name] = v
	p.set[name] = true
	return p
}

// SetRaw sets a property from its textual form. The value is converted
// when the properties are resolved against an operator.
func (p *Properties) SetRaw(name, v string) *Properties {
	p.raw[name] = v
	p.set[name] = true
	return p
}

// IsSet reports whether the caller supplied a value for name.
func (p *Properties) IsSet(name string) bool {
	return p.set[name]
}

// Int returns an int property, or 0.
func (p *Properties) Int(name string) int {
	v, _ := p.values[name].(int)
	return v
}

// Enum returns an enum property, or "".
func (p *Properties) Enum(name string) string {
	v, _ := p.values[name].(string)
	return v
}

// ParseAssignments parses "name=value" pairs into raw properties.
func ParseAssignments(assignments []string) (*Properties, error) {
	p := NewProperties()
	for _, a := range assignments {
		name, value, ok := strings.Cut(a, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "property must be name=value, got %q", a)
		}
		p.SetRaw(name, strings.TrimSpace(value))
	}
	return p, nil
}

// resolve checks p against defs and returns a copy with every declared
// property present, defaults filled in.
func (p *Properties) resolve(defs []PropertyDef) (*Properties, error) {
	if p == nil {
		p = NewProperties()
	}
	out := NewProperties()

	for name := range p.set {
		if !slices.ContainsFunc(defs, func(d PropertyDef) bool { return d.Name == name }) {
			return nil, errors.Newf(errors.ErrInvalidInput, "unknown property %q", name)
		}
	}

	for _, def := range defs {
		value, err := p.valueFor(def)
		if err != nil {
			return nil, err
		}
		out.values[def.Name] = value
		out.set[def.Name] = p.set[def.Name]
	}
	return out, nil
}

func (p *Properties) valueFor(def PropertyDef) (interface{}, error) {
	if !p.set[def.Name] {
		return def.Default, nil
	}

	switch def.Type {
	case PropertyInt:
		v, ok := p.values[def.Name].(int)
		if !ok {
			parsed, err := strconv.Atoi(p.raw[def.Name])
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrInvalidInput, "property %q expects an integer", def.Name)
			}
			v = parsed
		}
		if v < def.Min || (def.Max != 0 && v > def.Max) {
			return nil, errors.Newf(errors.ErrInvalidInput, "property %q out of range: %d", def.Name, v).
				WithDetail("min", def.Min).
				WithDetail("max", def.Max)
		}
		return v, nil

	case PropertyEnum:
		v, ok := p.values[def.Name].(string)
		if !ok {
			v = p.raw[def.Name]
		}
		v = strings.ToLower(v)
		if !slices.Contains(def.Items, v) {
			return nil, errors.Newf(errors.ErrInvalidInput, "property %q must be one of %s, got %q",
				def.Name, strings.Join(def.Items, ", "), v)
		}
		return v, nil

	default:
		return nil, errors.Newf(errors.ErrInternal, "property %q has unsupported type %q", def.Name, def.Type)
	}
}
