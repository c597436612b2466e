package mdl

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/dirkkok101/zork/internal/extractor"
	"github.com/dirkkok101/zork/internal/gamedata"
)

// Source reads the MDL-flavored authoring text and produces a canonical
// content set. It implements extractor.Source.
type Source struct {
	tables *Tables
	logger *zap.Logger
}

// NewSource returns a Source over the given lookup tables.
//
// Precondition: tables and logger are non-nil.
func NewSource(tables *Tables, logger *zap.Logger) *Source {
	return &Source{tables: tables, logger: logger}
}

// Load reads the source file and runs the full pipeline: scan, resolve
// attributes and exits, classify, normalize ids. The pass is strictly
// sequential and pure apart from the single file read; identical input
// always yields an identical content set.
func (s *Source) Load(sourcePath string) (*extractor.ContentSet, error) {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("reading source text: %w", err)
	}
	text := string(data)

	objects, objectDrops := ScanObjects(text)
	rooms, roomDrops := ScanRooms(text)
	for _, d := range objectDrops {
		s.logger.Warn("dropping object definition",
			zap.String("reason", d.Reason),
			zap.String("snippet", d.Snippet))
	}
	for _, d := range roomDrops {
		s.logger.Warn("dropping room definition",
			zap.String("reason", d.Reason),
			zap.String("snippet", d.Snippet))
	}
	objectsScanned := len(objects) + len(objectDrops)
	roomsScanned := len(rooms) + len(roomDrops)
	meleeTables := ParseMeleeTables(text)
	doors := ParseDoors(text, objects, s.tables)
	cexits := ParseCExits(text)
	resolver := NewExitResolver(s.tables, doors, cexits)

	s.logger.Debug("scan complete",
		zap.Int("objects", objectsScanned),
		zap.Int("rooms", roomsScanned),
		zap.Int("melee_tables", len(meleeTables)),
		zap.Int("doors", len(doors)),
		zap.Int("conditional_exits", len(cexits)))

	// Per-kind id namespaces over a shared derivation, so the same legacy
	// key yields the same id everywhere while collisions are tracked within
	// each kind.
	itemIDs := extractor.NewNormalizer(s.tables.LegacyIDs, s.tables.Families)
	monsterIDs := extractor.NewNormalizer(s.tables.LegacyIDs, s.tables.Families)
	sceneIDs := extractor.NewNormalizer(s.tables.LegacyIDs, s.tables.Families)

	set := &extractor.ContentSet{
		Stats: extractor.ScanStats{
			ObjectsScanned: objectsScanned,
			RoomsScanned:   roomsScanned,
		},
	}
	rules := extractor.ItemRules(s.tables.Classifier)

	for i := range objects {
		def := &objects[i]
		attrs := ResolveAttributes(def.BodyLines, s.tables)
		if attrs.Has(extractor.FlagVillain) || s.tables.IsMonsterKey(def.PrimaryName()) {
			monster, err := s.buildMonster(def, attrs, meleeTables, monsterIDs)
			if err != nil {
				return nil, err
			}
			set.Monsters = append(set.Monsters, monster)
			continue
		}
		item, err := s.buildItem(def, attrs, rules, itemIDs)
		if err != nil {
			return nil, err
		}
		set.Items = append(set.Items, item)
	}

	for i := range rooms {
		scene, err := s.buildScene(&rooms[i], resolver, sceneIDs)
		if err != nil {
			return nil, err
		}
		set.Scenes = append(set.Scenes, scene)
	}

	set.Stats.ItemsProduced = len(set.Items)
	set.Stats.MonstersProduced = len(set.Monsters)
	set.Stats.ScenesProduced = len(set.Scenes)
	return set, nil
}

func (s *Source) buildItem(def *EntityDefinition, attrs *extractor.AttributeSet, rules []extractor.ItemRule, ids *extractor.Normalizer) (*extractor.ItemRecord, error) {
	id, err := ids.Normalize(def.PrimaryName())
	if err != nil {
		return nil, fmt.Errorf("normalizing item %q: %w", def.PrimaryName(), err)
	}

	name := strings.ToLower(def.PrimaryName())
	description := def.Description
	if description == "" {
		description = name
	}
	weight := extractor.DefaultItemSize
	if size, ok := attrs.Property(extractor.PropSize); ok {
		weight = size
	}

	facts := extractor.ItemFacts{
		Attrs:       attrs,
		Names:       def.Names,
		Adjectives:  def.Adjectives,
		Description: def.Description,
	}

	return &extractor.ItemRecord{
		ID:          id,
		Name:        name,
		Description: description,
		ExamineText: attrs.Text(extractor.TextExamine),
		ReadText:    attrs.Text(extractor.TextRead),
		Aliases:     itemAliases(def),
		Category:    extractor.ClassifyItem(facts, rules),
		Portable:    attrs.Has(extractor.FlagPortable),
		Weight:      weight,
		Size:        extractor.SizeClassFor(weight),
		Tags:        attrs.Tags(),
		Properties:  attrs.Properties(),
	}, nil
}

func (s *Source) buildMonster(def *EntityDefinition, attrs *extractor.AttributeSet, meleeTables map[string]extractor.MeleeTable, ids *extractor.Normalizer) (*extractor.MonsterRecord, error) {
	id, err := ids.Normalize(def.PrimaryName())
	if err != nil {
		return nil, fmt.Errorf("normalizing monster %q: %w", def.PrimaryName(), err)
	}

	var melee extractor.MeleeTable
	for _, n := range def.Names {
		if t, ok := meleeTables[strings.ToUpper(n)]; ok {
			melee = t
			break
		}
	}
	var strength *int
	if v, ok := attrs.Property(extractor.PropStrength); ok {
		strength = &v
	}
	hasCombat := melee != nil || strength != nil

	name := strings.ToLower(def.PrimaryName())
	description := def.Description
	if description == "" {
		description = name
	}

	return &extractor.MonsterRecord{
		ID:               id,
		Name:             name,
		Type:             extractor.ClassifyMonster(id, hasCombat, def.Description, s.tables.Classifier),
		Description:      description,
		ExamineText:      attrs.Text(extractor.TextExamine),
		Synonyms:         lowerAll(def.Names[1:]),
		CombatStrength:   strength,
		MeleeMessages:    melee,
		MovementDemon:    attrs.Text(extractor.TextDemon),
		BehaviorFunction: attrs.Text(extractor.TextFunction),
		Tags:             attrs.Tags(),
		Properties:       attrs.Properties(),
	}, nil
}

func (s *Source) buildScene(room *RoomDefinition, resolver *ExitResolver, ids *extractor.Normalizer) (*extractor.SceneRecord, error) {
	id, err := ids.Normalize(room.Key)
	if err != nil {
		return nil, fmt.Errorf("normalizing room %q: %w", room.Key, err)
	}

	exits, err := resolver.Resolve(room, func(target string) (string, error) {
		return ids.Normalize(target)
	})
	if err != nil {
		return nil, err
	}
	for dir := range exits {
		if !gamedata.Direction(dir).IsCanonical() {
			s.logger.Warn("dropping exit with unrecognized direction",
				zap.String("room", room.Key),
				zap.String("direction", dir))
			delete(exits, dir)
		}
	}

	attrs := ResolveAttributes(room.BodyLines, s.tables)
	region := extractor.ClassifyRegion(room.Key, s.tables.Classifier)

	title := room.Name
	if title == "" {
		title = room.Key
	}
	description := room.Description
	if description == "" {
		description = fmt.Sprintf("You are in the %s.", strings.ToLower(title))
	}

	return &extractor.SceneRecord{
		ID:          id,
		Title:       title,
		Description: description,
		Exits:       exits,
		Region:      region,
		Lighting:    lightingFor(region, attrs),
		Tags:        s.sceneTags(room.Key, region, attrs),
	}, nil
}

// sceneTags merges the room's flag tags with region-derived tags and the
// dangerous marker, deduplicated and sorted.
func (s *Source) sceneTags(key string, region extractor.Region, attrs *extractor.AttributeSet) []string {
	set := make(map[string]bool)
	for _, tag := range attrs.Tags() {
		set[tag] = true
	}
	switch region {
	case extractor.RegionMaze:
		set["maze"] = true
		set["confusing"] = true
	case extractor.RegionEndgame:
		set["sacred"] = true
		set["final_area"] = true
	}
	if s.tables.IsDangerous(key) {
		set["dangerous"] = true
	}
	tags := make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// lightingFor derives a scene's ambient light. Outdoor rooms get daylight;
// naturally lit or indoor rooms are lit; everything else is dark and needs
// a light source.
func lightingFor(region extractor.Region, attrs *extractor.AttributeSet) string {
	switch {
	case region == extractor.RegionAboveGround:
		return "daylight"
	case attrs.HasAny(extractor.FlagNaturallyLit, extractor.FlagIndoors):
		return "lit"
	default:
		return "dark"
	}
}

// itemAliases lists the secondary names followed by the adjectives, all
// lowercased. Players refer to items by adjective as well as by name.
func itemAliases(def *EntityDefinition) []string {
	aliases := make([]string, 0, len(def.Names)-1+len(def.Adjectives))
	aliases = append(aliases, lowerAll(def.Names[1:])...)
	aliases = append(aliases, lowerAll(def.Adjectives)...)
	return aliases
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
