package theme

import (
	"fmt"
	"sort"
	"strings"
)

// String renders a fixed-order report of every field for diagnostics.
func (t *Theme) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s theme\n", t.name)
	writeReport(&b, t, "")
	return b.String()
}

func writeReport(b *strings.Builder, s Settings, indent string) {
	for _, f := range s.fields() {
		if f.omit || f.alias {
			continue
		}
		if f.group != nil {
			fmt.Fprintf(b, "%s%s:\n", indent, f.name)
			writeReport(b, f.group(), indent+"    ")
			continue
		}
		fmt.Fprintf(b, "%s%-34s : %s\n", indent, f.name, reportValue(f.get()))
	}
}

func reportValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "<unset>"
	case string:
		return val
	case float64:
		return fmtFloat(val)
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = reportValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + reportValue(val[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", val)
	}
}
