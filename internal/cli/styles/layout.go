package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// LayoutRenderer renders non-interactive output for layout subcommands.
type LayoutRenderer struct {
	theme *Theme
}

func NewLayoutRenderer(theme *Theme) *LayoutRenderer {
	return &LayoutRenderer{theme: theme}
}

func (r *LayoutRenderer) RenderEmptyList() string {
	return r.theme.Subtle.Render("No saved layouts found.")
}

func (r *LayoutRenderer) RenderList(items []usecase.SetupInfo) string {
	if len(items) == 0 {
		return r.RenderEmptyList()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconPane), r.theme.Title.Render("Layouts")))
	for _, info := range items {
		b.WriteString(r.renderOne(info))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *LayoutRenderer) renderOne(info usecase.SetupInfo) string {
	marker := " "
	if info.Active {
		marker = r.theme.Highlight.Render("●")
	}
	name := r.theme.Highlight.Render(info.Name)
	if info.Err != nil {
		return fmt.Sprintf("%s %s  %s", marker, name, r.theme.ErrorStyle.Render(info.Err.Error()))
	}

	enabled := 0
	for _, m := range info.Doc.Menu {
		if m.Enabled {
			enabled++
		}
	}
	panels := r.theme.BadgeMuted.Render(fmt.Sprintf("%d panels", len(info.Doc.Panels)))
	blocks := r.theme.BadgeMuted.Render(fmt.Sprintf("%d/%d blocks", enabled, len(info.Doc.Menu)))
	saved := ""
	if !info.Doc.SavedAt.IsZero() {
		saved = r.theme.Subtle.Render(info.Doc.SavedAt.Local().Format("2006-01-02 15:04"))
	}
	return fmt.Sprintf("%s %s  %s %s  %s", marker, name, panels, blocks, saved)
}

// RenderDocument renders the tree outline followed by the group and catalog tables.
func (r *LayoutRenderer) RenderDocument(name string, doc *entity.LayoutDocument) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconTree), r.theme.Title.Render(name)))
	if doc.Tree == nil {
		b.WriteString(r.theme.Subtle.Render("(empty dock)"))
		b.WriteString("\n")
	} else {
		r.renderNode(&b, doc, doc.Tree, "", "")
	}
	if len(doc.Panels) > 0 {
		b.WriteString("\n")
		b.WriteString(RenderTable(r.theme, PanelTableColumns(), PanelRows(doc)))
		b.WriteString("\n")
	}
	if len(doc.Menu) > 0 {
		b.WriteString("\n")
		b.WriteString(RenderTable(r.theme, MenuTableColumns(), MenuRows(doc)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *LayoutRenderer) renderNode(b *strings.Builder, doc *entity.LayoutDocument, n *entity.NodeDocument, prefix, childPrefix string) {
	b.WriteString(prefix)
	switch n.Type {
	case entity.NodeTypeSplit:
		label := fmt.Sprintf("%s %.2f", n.Orientation, n.Ratio)
		if n.UserSized {
			label += fmt.Sprintf(" (%d|%d)", n.PreferredFirstSpan, n.PreferredSecondSpan)
		}
		b.WriteString(r.theme.Subtitle.Render(label))
		b.WriteString("\n")
		for i, child := range []*entity.NodeDocument{n.First, n.Second} {
			if child == nil {
				continue
			}
			branch, next := "├─ ", "│  "
			if i == 1 {
				branch, next = "└─ ", "   "
			}
			r.renderNode(b, doc, child, childPrefix+branch, childPrefix+next)
		}
	default:
		b.WriteString(r.renderPanel(doc, n.PanelID))
		b.WriteString("\n")
	}
}

func (r *LayoutRenderer) renderPanel(doc *entity.LayoutDocument, id entity.PanelID) string {
	for _, p := range doc.Panels {
		if p.ID != id {
			continue
		}
		names := make([]string, 0, len(p.Blocks))
		for _, bid := range p.Blocks {
			name := string(bid)
			if bid == p.Active {
				name = r.theme.Highlight.Render(name)
			}
			names = append(names, name)
		}
		lock := ""
		if doc.PanelLocks[id] {
			lock = " " + r.theme.WarningStyle.Render(IconLock)
		}
		return fmt.Sprintf("[%s]%s", strings.Join(names, " "), lock)
	}
	return r.theme.ErrorStyle.Render(fmt.Sprintf("missing panel %s", id))
}

func (r *LayoutRenderer) RenderSaved(name string, doc *entity.LayoutDocument) string {
	return fmt.Sprintf("%s Saved layout %s (%d panels).",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(name),
		len(doc.Panels),
	)
}

func (r *LayoutRenderer) RenderDeleted(names []string) string {
	return fmt.Sprintf("%s Deleted %s.",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(strings.Join(names, ", ")),
	)
}

// RenderApplied summarizes a restore, listing skipped references.
func (r *LayoutRenderer) RenderApplied(name string, out *usecase.ApplyOutput) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s Applied layout %s.", r.theme.SuccessStyle.Render(IconCheck), r.theme.Highlight.Render(name)))
	if out.UsedDefaultTree {
		b.WriteString("\n")
		b.WriteString(r.theme.WarningStyle.Render(IconWarning + " tree was unusable, groups were laid out in one row"))
	}
	for _, s := range out.Skipped {
		b.WriteString("\n  ")
		b.WriteString(r.theme.WarningStyle.Render(IconWarning + " " + s))
	}
	return b.String()
}

func (r *LayoutRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}
