package trade

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// IMEIList is the ordered list of IMEIs acquired in one purchase batch,
// stored as JSONB alongside the purchase record
type IMEIList []string

// Value implements driver.Valuer for JSONB storage
func (l IMEIList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSONB retrieval
func (l *IMEIList) Scan(value interface{}) error {
	if value == nil {
		*l = IMEIList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("unsupported type for IMEIList")
	}

	if len(bytes) == 0 {
		*l = IMEIList{}
		return nil
	}
	return json.Unmarshal(bytes, l)
}

// Contains reports whether the list holds the given IMEI
func (l IMEIList) Contains(imei string) bool {
	for _, candidate := range l {
		if candidate == imei {
			return true
		}
	}
	return false
}

// normalizeIMEIs trims whitespace and drops empty entries, rejecting
// duplicates within the same batch
func normalizeIMEIs(imeis []string) (IMEIList, error) {
	cleaned := make(IMEIList, 0, len(imeis))
	seen := make(map[string]struct{}, len(imeis))
	for _, raw := range imeis {
		imei := strings.TrimSpace(raw)
		if imei == "" {
			continue
		}
		if _, dup := seen[imei]; dup {
			return nil, fmt.Errorf("duplicate IMEI %q in batch", imei)
		}
		seen[imei] = struct{}{}
		cleaned = append(cleaned, imei)
	}
	return cleaned, nil
}
