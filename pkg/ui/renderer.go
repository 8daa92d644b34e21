package ui

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/patchup/pkg/patch"
	"github.com/arthur-debert/patchup/pkg/types"
)

// Renderer turns resolved catalog data into output for one format.
type Renderer struct {
	format Format
}

// NewRenderer creates a Renderer for the given concrete format.
// FormatAuto must be resolved by the caller first.
func NewRenderer(format Format) *Renderer {
	return &Renderer{format: format}
}

// RenderApps renders the supported-apps table, sorted by short name.
func (r *Renderer) RenderApps(supported map[string]string) (string, error) {
	type row struct {
		App     string `json:"app"`
		Package string `json:"package"`
	}

	rows := make([]row, 0, len(supported))
	for pkg, short := range supported {
		rows = append(rows, row{App: short, Package: pkg})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].App < rows[j].App })

	switch r.format {
	case FormatJSON:
		return marshalJSON(rows)
	case FormatTerminal:
		data := pterm.TableData{{"App", "Package"}}
		for _, row := range rows {
			data = append(data, []string{row.App, MutedStyle.Render(row.Package)})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	default:
		var b strings.Builder
		for _, row := range rows {
			fmt.Fprintf(&b, "%s\t%s\n", row.App, row.Package)
		}
		return b.String(), nil
	}
}

// RenderPatches renders an app's patch bucket, its recommended
// version, and the universal patches that apply everywhere.
func (r *Renderer) RenderPatches(app string, bucket, universal []patch.Projected, recommended string) (string, error) {
	if r.format == FormatJSON {
		return marshalJSON(map[string]interface{}{
			"app":                app,
			"recommendedVersion": recommended,
			"patches":            projectedRows(bucket),
			"universal":          projectedRows(universal),
		})
	}

	var b strings.Builder

	title := fmt.Sprintf("Patches for %s", app)
	version := fmt.Sprintf("Recommended version: %s", recommended)
	if r.format == FormatTerminal {
		title = TitleStyle.Render(title)
		version = "Recommended version: " + VersionStyle.Render(recommended)
	}
	b.WriteString(title + "\n")
	b.WriteString(version + "\n\n")

	if len(bucket) == 0 {
		b.WriteString(r.muted("No patches available") + "\n")
	} else if r.format == FormatTerminal {
		data := pterm.TableData{{"Patch", "Package", "Version"}}
		for _, p := range bucket {
			data = append(data, []string{p.NormalizedName(), MutedStyle.Render(p.App), p.Version})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return "", err
		}
		b.WriteString(table + "\n")
	} else {
		for _, p := range bucket {
			fmt.Fprintf(&b, "%s\t%s\t%s\n", p.NormalizedName(), p.App, p.Version)
		}
	}

	if len(universal) > 0 {
		b.WriteString("\n" + r.muted(fmt.Sprintf("%d universal patch(es) also apply", len(universal))) + "\n")
	}

	return b.String(), nil
}

// RenderPlan renders the resolved selection: effective version,
// experimental status, and the argument list for the patcher CLI.
func (r *Renderer) RenderPlan(state *types.AppState, includes, excludes, args []string) (string, error) {
	if r.format == FormatJSON {
		return marshalJSON(map[string]interface{}{
			"app":          state.AppName,
			"version":      state.RecommendedVersion,
			"experimental": state.Experimental,
			"noOfPatches":  state.NoOfPatches,
			"include":      includes,
			"exclude":      excludes,
			"args":         args,
		})
	}

	var b strings.Builder

	title := fmt.Sprintf("Patch plan for %s", state.AppName)
	if r.format == FormatTerminal {
		title = TitleStyle.Render(title)
	}
	b.WriteString(title + "\n")

	version := state.RecommendedVersion
	if r.format == FormatTerminal {
		version = VersionStyle.Render(version)
	}
	fmt.Fprintf(&b, "Version: %s", version)
	if state.Experimental {
		marker := "(experimental)"
		if r.format == FormatTerminal {
			marker = ExperimentalStyle.Render(marker)
		}
		b.WriteString(" " + marker)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Patches in bucket: %d\n\n", state.NoOfPatches)

	fmt.Fprintf(&b, "Included (%d): %s\n", len(includes), strings.Join(includes, ", "))
	fmt.Fprintf(&b, "Excluded (%d): %s\n", len(excludes), strings.Join(excludes, ", "))
	fmt.Fprintf(&b, "\nArgs: %s\n", strings.Join(args, " "))

	return b.String(), nil
}

func (r *Renderer) muted(s string) string {
	if r.format == FormatTerminal {
		return MutedStyle.Render(s)
	}
	return s
}

func projectedRows(projections []patch.Projected) []map[string]string {
	rows := make([]map[string]string, 0, len(projections))
	for _, p := range projections {
		rows = append(rows, map[string]string{
			"name":    p.NormalizedName(),
			"app":     p.App,
			"version": p.Version,
		})
	}
	return rows
}

func marshalJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
