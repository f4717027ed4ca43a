/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entity

import (
	"encoding/json"
	"fmt"
)

// FromStruct converts a json-tagged Go value into an Entity. Values that
// implement json.Marshaler (strfmt.DateTime and friends) are rendered the
// way they render on the wire.
func FromStruct(v any) (Entity, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", v, err)
	}
	out := make(Entity)
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to convert %T to entity: %w", v, err)
	}
	return out, nil
}

// Decode fills out, a pointer to a json-tagged Go value, from the Entity.
func (e Entity) Decode(out any) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode entity into %T: %w", out, err)
	}
	return nil
}
