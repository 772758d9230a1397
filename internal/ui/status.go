package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/swiftfs/swiftfs/internal/queryfs"
	"github.com/swiftfs/swiftfs/internal/telemetry"
)

// StatusReport is everything the status command displays.
type StatusReport struct {
	EngineBinary string
	Available    bool
	Verify       bool
	Readiness    map[string]bool
	Metrics      *telemetry.Snapshot
}

// RenderStatus writes a human-readable status report.
func RenderStatus(w io.Writer, report StatusReport, styles Styles) {
	var b strings.Builder

	b.WriteString(styles.Header.Render("swiftfs status"))
	b.WriteString("\n\n")

	writeField(&b, styles, "Engine binary", styles.Value.Render(report.EngineBinary))
	if report.Available {
		writeField(&b, styles, "Index engine", styles.Good.Render("available"))
	} else {
		writeField(&b, styles, "Index engine", styles.Bad.Render("unavailable (direct filesystem only)"))
	}
	writeField(&b, styles, "Verification", onOff(styles, report.Verify))

	if len(report.Readiness) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Header.Render("Volume readiness"))
		b.WriteString("\n")
		for _, root := range sortedKeys(report.Readiness) {
			state := styles.Good.Render("ready")
			if !report.Readiness[root] {
				state = styles.Warning.Render("not indexed")
			}
			writeField(&b, styles, root, state)
		}
	}

	if report.Metrics != nil && report.Metrics.TotalQueries > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Header.Render("Queries"))
		b.WriteString("\n")
		writeField(&b, styles, "Total", fmt.Sprintf("%d", report.Metrics.TotalQueries))
		writeField(&b, styles, "Zero results", fmt.Sprintf("%d", report.Metrics.ZeroResultCount))
		for _, route := range []queryfs.Route{queryfs.RouteIndex, queryfs.RouteDirect, queryfs.RouteFallback} {
			if n := report.Metrics.ByRoute[route]; n > 0 {
				writeField(&b, styles, "Via "+string(route), fmt.Sprintf("%d", n))
			}
		}
		if len(report.Metrics.HotPaths) > 0 {
			b.WriteString("\n")
			b.WriteString(styles.Header.Render("Hot paths"))
			b.WriteString("\n")
			for _, pc := range report.Metrics.HotPaths {
				writeField(&b, styles, fmt.Sprintf("%d", pc.Count), styles.Dim.Render(pc.Path))
			}
		}
	}

	fmt.Fprintln(w, styles.Panel.Render(strings.TrimRight(b.String(), "\n")))
}

func writeField(b *strings.Builder, styles Styles, label, value string) {
	fmt.Fprintf(b, "%s %s\n", styles.Label.Render(label+":"), value)
}

func onOff(styles Styles, enabled bool) string {
	if enabled {
		return styles.Warning.Render("enabled")
	}
	return styles.Dim.Render("disabled")
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
