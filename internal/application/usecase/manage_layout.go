package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/invopop/jsonschema"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/logging"
)

// ErrNoSavedLayout is returned when the requested setup has no row.
var ErrNoSavedLayout = errors.New("no saved layout")

// DocumentFormat names an export encoding.
type DocumentFormat string

const (
	FormatJSON DocumentFormat = "json"
	FormatTOML DocumentFormat = "toml"
)

// ParseDocumentFormat accepts "json" or "toml" (case-insensitive).
func ParseDocumentFormat(s string) (DocumentFormat, error) {
	switch DocumentFormat(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatTOML:
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want json or toml)", s)
	}
}

// ManageLayoutUseCase stores layout documents as rows of one table:
// the active setup under a well-known key, named setups under their names.
type ManageLayoutUseCase struct {
	repo      repository.LayoutRowRepository
	table     string
	activeKey string
}

// NewManageLayoutUseCase creates a new layout storage use case.
func NewManageLayoutUseCase(repo repository.LayoutRowRepository, table, activeKey string) *ManageLayoutUseCase {
	return &ManageLayoutUseCase{
		repo:      repo,
		table:     table,
		activeKey: activeKey,
	}
}

// SetupInfo summarizes one stored setup.
type SetupInfo struct {
	Name   string
	Active bool
	Doc    *entity.LayoutDocument // nil when the row does not decode
	Err    error
}

// Save captures the dock and stores it as the active setup.
func (uc *ManageLayoutUseCase) Save(ctx context.Context, d *entity.Dock) (*entity.LayoutDocument, error) {
	return uc.SaveAs(ctx, d, uc.activeKey)
}

// SaveAs captures the dock and stores it under name.
func (uc *ManageLayoutUseCase) SaveAs(ctx context.Context, d *entity.Dock, name string) (*entity.LayoutDocument, error) {
	if d == nil {
		return nil, fmt.Errorf("dock is required")
	}
	doc := entity.CaptureLayout(d)
	if err := uc.Store(ctx, name, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Store writes a document under name.
func (uc *ManageLayoutUseCase) Store(ctx context.Context, name string, doc *entity.LayoutDocument) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("setup name required")
	}
	if doc == nil {
		return fmt.Errorf("layout document cannot be nil")
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal layout document: %w", err)
	}
	if err := uc.repo.SaveRow(ctx, uc.table, name, string(data)); err != nil {
		return fmt.Errorf("save layout %q: %w", name, err)
	}

	logging.FromContext(logging.WithSetup(ctx, name)).Debug().
		Int("panels", len(doc.Panels)).
		Int("bytes", len(data)).
		Msg("saved layout")
	return nil
}

// Load returns the active setup.
func (uc *ManageLayoutUseCase) Load(ctx context.Context) (*entity.LayoutDocument, error) {
	return uc.LoadNamed(ctx, uc.activeKey)
}

// LoadNamed returns the setup stored under name. A missing row yields
// ErrNoSavedLayout; an undecodable row yields a wrapped decode error.
func (uc *ManageLayoutUseCase) LoadNamed(ctx context.Context, name string) (*entity.LayoutDocument, error) {
	rows, err := uc.repo.LoadRows(ctx, uc.table)
	if err != nil {
		return nil, fmt.Errorf("load layouts: %w", err)
	}
	raw, ok := rows[name]
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoSavedLayout, name)
	}

	doc, err := DecodeDocument([]byte(raw), FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("decode layout %q: %w", name, err)
	}
	return doc, nil
}

// List returns every stored setup sorted by name, the active one first.
func (uc *ManageLayoutUseCase) List(ctx context.Context) ([]SetupInfo, error) {
	rows, err := uc.repo.LoadRows(ctx, uc.table)
	if err != nil {
		return nil, fmt.Errorf("load layouts: %w", err)
	}

	infos := make([]SetupInfo, 0, len(rows))
	for name, raw := range rows {
		info := SetupInfo{Name: name, Active: name == uc.activeKey}
		info.Doc, info.Err = DecodeDocument([]byte(raw), FormatJSON)
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Active != infos[j].Active {
			return infos[i].Active
		}
		return infos[i].Name < infos[j].Name
	})
	return infos, nil
}

// Delete removes setups by name.
func (uc *ManageLayoutUseCase) Delete(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return nil
	}
	if err := uc.repo.DeleteRows(ctx, uc.table, names); err != nil {
		return fmt.Errorf("delete layouts: %w", err)
	}
	logging.FromContext(ctx).Info().Strs("setups", names).Msg("deleted layouts")
	return nil
}

// Export encodes a document.
func (uc *ManageLayoutUseCase) Export(doc *entity.LayoutDocument, format DocumentFormat) ([]byte, error) {
	return EncodeDocument(doc, format)
}

// Import decodes and validates a document.
func (uc *ManageLayoutUseCase) Import(data []byte, format DocumentFormat) (*entity.LayoutDocument, error) {
	return DecodeDocument(data, format)
}

// Schema returns the JSON schema of the layout document.
func (uc *ManageLayoutUseCase) Schema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&entity.LayoutDocument{})
	schema.ID = "https://github.com/bnema/dockyard/layout.schema.json"
	schema.Title = "Dockyard Layout Document"
	schema.Description = "Saved dock layout: block catalog, panel groups, split tree and locks"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// EncodeDocument renders a document as indented JSON or TOML.
func EncodeDocument(doc *entity.LayoutDocument, format DocumentFormat) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("layout document cannot be nil")
	}
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return data, nil
	}
}

// DecodeDocument parses a document and checks its version.
func DecodeDocument(data []byte, format DocumentFormat) (*entity.LayoutDocument, error) {
	doc := &entity.LayoutDocument{}
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), doc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	}
	if doc.Version <= 0 {
		return nil, fmt.Errorf("%w: missing version", ErrUnsupportedVersion)
	}
	if doc.Version > entity.LayoutDocumentVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}
	return doc, nil
}
