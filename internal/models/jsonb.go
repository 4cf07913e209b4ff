package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// jsonbScan decodes a jsonb column into dest, accepting both the []byte and
// string forms drivers hand back.
func jsonbScan(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for jsonb: %T", value)
	}
	return json.Unmarshal(data, dest)
}

// UUIDList is a jsonb-backed ordered set of entity ids.
type UUIDList []uuid.UUID

func (l UUIDList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *UUIDList) Scan(value interface{}) error {
	return jsonbScan(value, l)
}

// Contains reports whether id is present.
func (l UUIDList) Contains(id uuid.UUID) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// Add appends id unless it is already present.
func (l UUIDList) Add(id uuid.UUID) UUIDList {
	if l.Contains(id) {
		return l
	}
	return append(l, id)
}

// Remove drops id and reports whether it was present.
func (l UUIDList) Remove(id uuid.UUID) (UUIDList, bool) {
	for i, v := range l {
		if v == id {
			return append(l[:i:i], l[i+1:]...), true
		}
	}
	return l, false
}

// StringList is a jsonb-backed list of strings.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(value interface{}) error {
	return jsonbScan(value, l)
}

// IngredientList is a jsonb-backed list of recipe ingredients.
type IngredientList []Ingredient

func (l IngredientList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *IngredientList) Scan(value interface{}) error {
	return jsonbScan(value, l)
}

// MealList is a jsonb-backed meal plan, at most one entry per slot.
type MealList []Meal

func (l MealList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *MealList) Scan(value interface{}) error {
	return jsonbScan(value, l)
}
