package services

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// tagsJSON packs a tag list into the JSONB column representation.
func tagsJSON(tags []string) datatypes.JSON {
	if tags == nil {
		tags = []string{}
	}
	raw, _ := json.Marshal(tags)
	return datatypes.JSON(raw)
}
