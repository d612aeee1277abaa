package dock

import (
	"fmt"
	"sort"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// Diagnostic is one structural inconsistency between the visibility flags
// and the tree. Key identifies the issue for de-duplication.
type Diagnostic struct {
	Key     string
	Message string
}

// CheckIntegrity compares visible blocks against the groups reachable from
// the root. It never modifies the dock.
func CheckIntegrity(d *entity.Dock) []Diagnostic {
	reachable := make(map[entity.PanelID]bool)
	for _, id := range d.ReachablePanels() {
		reachable[id] = true
	}

	var out []Diagnostic
	for _, b := range d.Blocks() {
		if !b.Visible {
			continue
		}
		switch {
		case b.PanelID == "" || d.Panel(b.PanelID) == nil:
			out = append(out, Diagnostic{
				Key:     "visible-ungrouped:" + string(b.ID),
				Message: fmt.Sprintf("block %q is visible but belongs to no panel", b.ID),
			})
		case !reachable[b.PanelID]:
			out = append(out, Diagnostic{
				Key:     "visible-unreachable:" + string(b.ID),
				Message: fmt.Sprintf("block %q is visible but panel %q is not in the tree", b.ID, b.PanelID),
			})
		case d.Panel(b.PanelID).Active != b.ID:
			out = append(out, Diagnostic{
				Key:     "visible-inactive:" + string(b.ID),
				Message: fmt.Sprintf("block %q is visible but not active in panel %q", b.ID, b.PanelID),
			})
		}
	}

	ids := make([]entity.PanelID, 0, len(reachable))
	for id := range reachable {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		g := d.Panel(id)
		if g == nil {
			out = append(out, Diagnostic{
				Key:     "leaf-dangling:" + string(id),
				Message: fmt.Sprintf("tree references unknown panel %q", id),
			})
			continue
		}
		if b := d.ActiveBlock(id); b == nil || !b.Visible {
			out = append(out, Diagnostic{
				Key:     "leaf-hidden:" + string(id),
				Message: fmt.Sprintf("panel %q is in the tree but shows no block", id),
			})
		}
	}
	return out
}
