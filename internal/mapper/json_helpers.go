package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// tagsToJSON marshals a tag list for a jsonb column. Nil stays nil so
// the column reads back as SQL NULL, not "null".
func tagsToJSON(tags []string) datatypes.JSON {
	if tags == nil {
		return nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

func jsonToTags(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil
	}
	return tags
}

func mapToJSON(m map[string]string) datatypes.JSON {
	if m == nil {
		return nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

func jsonToMap(raw datatypes.JSON) map[string]string {
	if len(raw) == 0 {
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}
