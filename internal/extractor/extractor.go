package extractor

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/dirkkok101/zork/internal/gamedata"
)

// Format selects the serialization of output records.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string { return string(f) }

// Source loads a format-specific content source and produces the full
// canonical content set. A run is a pure function of the source text plus
// the source's static lookup tables.
//
// Precondition: sourcePath must satisfy the source's layout requirements.
// Postcondition: returns a non-nil ContentSet, or a non-nil error when the
// source is wholly unreadable or structurally ambiguous.
type Source interface {
	Load(sourcePath string) (*ContentSet, error)
}

// Writer persists one serialized document at a path relative to the output
// root. Storage layout is the writer's concern, not the extractor's.
type Writer interface {
	Write(relPath string, data []byte) error
}

// Extractor orchestrates one extraction run from a Source to a Writer.
type Extractor struct {
	source Source
	logger *zap.Logger
}

// New constructs an Extractor backed by the given Source.
//
// Precondition: source and logger must be non-nil.
func New(source Source, logger *zap.Logger) *Extractor {
	return &Extractor{source: source, logger: logger}
}

// Run loads the source, verifies record invariants, and writes one document
// per record plus one index document per record kind. No partial output is
// written when the source cannot be loaded.
//
// Postcondition: returns the produced ContentSet, or a non-nil error; on
// error from Load, nothing has been written.
func (e *Extractor) Run(sourcePath string, w Writer, format Format) (*ContentSet, error) {
	overall := time.Now()

	t0 := time.Now()
	content, err := e.source.Load(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("loading source: %w", err)
	}
	e.logger.Info("source loaded",
		zap.Int("items", len(content.Items)),
		zap.Int("monsters", len(content.Monsters)),
		zap.Int("scenes", len(content.Scenes)),
		zap.Duration("elapsed", time.Since(t0).Round(time.Millisecond)),
	)

	if err := e.checkUnique(content); err != nil {
		return nil, err
	}

	if err := e.writeItems(content.Items, w, format); err != nil {
		return nil, err
	}
	if err := e.writeMonsters(content.Monsters, w, format); err != nil {
		return nil, err
	}
	if err := e.writeScenes(content.Scenes, w, format); err != nil {
		return nil, err
	}

	e.logger.Info("extraction complete",
		zap.Int("objects_scanned", content.Stats.ObjectsScanned),
		zap.Int("rooms_scanned", content.Stats.RoomsScanned),
		zap.Int("items_produced", content.Stats.ItemsProduced),
		zap.Int("monsters_produced", content.Stats.MonstersProduced),
		zap.Int("scenes_produced", content.Stats.ScenesProduced),
		zap.Duration("elapsed", time.Since(overall).Round(time.Millisecond)),
	)
	return content, nil
}

// checkUnique enforces the pairwise-distinct id invariant per variant.
func (e *Extractor) checkUnique(content *ContentSet) error {
	kinds := []struct {
		name string
		ids  []string
	}{
		{"item", itemIDs(content.Items)},
		{"monster", monsterIDs(content.Monsters)},
		{"scene", sceneIDs(content.Scenes)},
	}
	for _, kind := range kinds {
		seen := make(map[string]bool, len(kind.ids))
		for _, id := range kind.ids {
			if id == "" {
				return fmt.Errorf("%s record with empty id", kind.name)
			}
			if seen[id] {
				return fmt.Errorf("duplicate %s id %q", kind.name, id)
			}
			seen[id] = true
		}
	}
	return nil
}

func (e *Extractor) writeItems(items []*ItemRecord, w Writer, format Format) error {
	sorted := make([]*ItemRecord, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	index := ItemIndex{Categories: make(map[string][]string)}
	for _, item := range sorted {
		data, err := marshalRecord(item, format)
		if err != nil {
			return fmt.Errorf("serializing item %q: %w", item.ID, err)
		}
		// Validate output is loadable before writing.
		if _, err := gamedata.LoadItemFromBytes(data, gamedata.Format(format)); err != nil {
			return fmt.Errorf("item %q failed validation: %w", item.ID, err)
		}
		if err := w.Write(fmt.Sprintf("items/%s.%s", item.ID, format.Ext()), data); err != nil {
			return fmt.Errorf("writing item %q: %w", item.ID, err)
		}
		index.Items = append(index.Items, item.ID)
		cat := strings.ToLower(string(item.Category))
		index.Categories[cat] = append(index.Categories[cat], item.ID)
	}
	index.Total = len(index.Items)
	return e.writeIndex("items", index, w, format)
}

func (e *Extractor) writeMonsters(monsters []*MonsterRecord, w Writer, format Format) error {
	sorted := make([]*MonsterRecord, len(monsters))
	copy(sorted, monsters)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	index := MonsterIndex{Types: make(map[string][]string)}
	for _, m := range sorted {
		data, err := marshalRecord(m, format)
		if err != nil {
			return fmt.Errorf("serializing monster %q: %w", m.ID, err)
		}
		if _, err := gamedata.LoadMonsterFromBytes(data, gamedata.Format(format)); err != nil {
			return fmt.Errorf("monster %q failed validation: %w", m.ID, err)
		}
		if err := w.Write(fmt.Sprintf("monsters/%s.%s", m.ID, format.Ext()), data); err != nil {
			return fmt.Errorf("writing monster %q: %w", m.ID, err)
		}
		index.Monsters = append(index.Monsters, m.ID)
		index.Types[string(m.Type)] = append(index.Types[string(m.Type)], m.ID)
	}
	index.Total = len(index.Monsters)
	return e.writeIndex("monsters", index, w, format)
}

func (e *Extractor) writeScenes(scenes []*SceneRecord, w Writer, format Format) error {
	sorted := make([]*SceneRecord, len(scenes))
	copy(sorted, scenes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	index := SceneIndex{Regions: make(map[string][]string)}
	for _, s := range sorted {
		data, err := marshalRecord(s, format)
		if err != nil {
			return fmt.Errorf("serializing scene %q: %w", s.ID, err)
		}
		if _, err := gamedata.LoadSceneFromBytes(data, gamedata.Format(format)); err != nil {
			return fmt.Errorf("scene %q failed validation: %w", s.ID, err)
		}
		if err := w.Write(fmt.Sprintf("scenes/%s.%s", s.ID, format.Ext()), data); err != nil {
			return fmt.Errorf("writing scene %q: %w", s.ID, err)
		}
		index.Scenes = append(index.Scenes, s.ID)
		index.Regions[string(s.Region)] = append(index.Regions[string(s.Region)], s.ID)
	}
	index.Total = len(index.Scenes)
	return e.writeIndex("scenes", index, w, format)
}

func (e *Extractor) writeIndex(kind string, index any, w Writer, format Format) error {
	data, err := marshalRecord(index, format)
	if err != nil {
		return fmt.Errorf("serializing %s index: %w", kind, err)
	}
	if err := w.Write(fmt.Sprintf("%s/index.%s", kind, format.Ext()), data); err != nil {
		return fmt.Errorf("writing %s index: %w", kind, err)
	}
	return nil
}

func marshalRecord(v any, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func itemIDs(items []*ItemRecord) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func monsterIDs(monsters []*MonsterRecord) []string {
	ids := make([]string, len(monsters))
	for i, m := range monsters {
		ids[i] = m.ID
	}
	return ids
}

func sceneIDs(scenes []*SceneRecord) []string {
	ids := make([]string, len(scenes))
	for i, s := range scenes {
		ids[i] = s.ID
	}
	return ids
}
