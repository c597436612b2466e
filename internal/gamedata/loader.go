package gamedata

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Format identifies the serialization of a content document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func unmarshal(data []byte, format Format, v any) error {
	switch format {
	case FormatJSON:
		return json.Unmarshal(data, v)
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("unknown content format %q", format)
	}
}

// LoadItemFromBytes parses and validates an item document.
//
// Postcondition: Returns a validated Item or a non-nil error.
func LoadItemFromBytes(data []byte, format Format) (*Item, error) {
	var item Item
	if err := unmarshal(data, format, &item); err != nil {
		return nil, fmt.Errorf("parsing item document: %w", err)
	}
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("validating item: %w", err)
	}
	return &item, nil
}

// LoadMonsterFromBytes parses and validates a monster document.
//
// Postcondition: Returns a validated Monster or a non-nil error.
func LoadMonsterFromBytes(data []byte, format Format) (*Monster, error) {
	var monster Monster
	if err := unmarshal(data, format, &monster); err != nil {
		return nil, fmt.Errorf("parsing monster document: %w", err)
	}
	if err := monster.Validate(); err != nil {
		return nil, fmt.Errorf("validating monster: %w", err)
	}
	return &monster, nil
}

// LoadSceneFromBytes parses and validates a scene document.
//
// Postcondition: Returns a validated Scene or a non-nil error.
func LoadSceneFromBytes(data []byte, format Format) (*Scene, error) {
	var scene Scene
	if err := unmarshal(data, format, &scene); err != nil {
		return nil, fmt.Errorf("parsing scene document: %w", err)
	}
	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("validating scene: %w", err)
	}
	return &scene, nil
}
