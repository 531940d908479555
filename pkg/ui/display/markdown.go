package display

import (
	"fmt"
	"strings"
)

// OperatorMarkdown documents an operator as markdown.
func OperatorMarkdown(info OperatorInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", info.Name)
	fmt.Fprintf(&b, "`%s`\n\n", info.ID)
	fmt.Fprintf(&b, "%s.\n\n", strings.TrimSuffix(info.Description, "."))

	if len(info.Properties) == 0 {
		b.WriteString("This operator takes no properties.\n")
		return b.String()
	}

	b.WriteString("## Properties\n\n")
	b.WriteString("| Name | Type | Default | Values |\n")
	b.WriteString("|------|------|---------|--------|\n")
	for _, p := range info.Properties {
		fmt.Fprintf(&b, "| `%s` | %s | `%v` | %s |\n", p.Name, p.Type, p.Default, propertyValues(p))
	}
	for _, p := range info.Properties {
		if p.Description != "" {
			fmt.Fprintf(&b, "\n- `%s`: %s", p.Name, p.Description)
		}
	}
	b.WriteString("\n\nSet properties with `outliner run " + info.ID + " --prop name=value`.\n")
	return b.String()
}

func propertyValues(p PropertyInfo) string {
	switch {
	case len(p.Items) > 0:
		return strings.Join(p.Items, ", ")
	case len(p.Choices) > 0:
		parts := make([]string, len(p.Choices))
		for i, c := range p.Choices {
			parts[i] = fmt.Sprintf("%d: %s", c.Value, c.Name)
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}
