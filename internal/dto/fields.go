package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// fieldSet collects the columns a partial update touches.
type fieldSet map[string]any

func (f fieldSet) str(col string, v *string) {
	if v != nil {
		f[col] = *v
	}
}

func (f fieldSet) integer(col string, v *int) {
	if v != nil {
		f[col] = *v
	}
}

func (f fieldSet) boolean(col string, v *bool) {
	if v != nil {
		f[col] = *v
	}
}

func (f fieldSet) timestamp(col string, v *time.Time) {
	if v != nil {
		f[col] = *v
	}
}

// json sets a JSON column; an explicit null clears it.
func (f fieldSet) json(col string, raw json.RawMessage) {
	if raw == nil {
		return
	}
	f[col] = JSONColumn(raw)
}

// JSONColumn converts a request payload into a nullable JSON column value.
func JSONColumn(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return datatypes.JSON(raw)
}
