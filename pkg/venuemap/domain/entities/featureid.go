package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

var ErrInvalidFeatureID = errors.New("feature id must be a number or a string")

// FeatureID addresses a feature for feature-state writes. It is opaque: the
// JSON number or string the browser reported is kept verbatim and written
// back unchanged.
type FeatureID struct {
	raw string
}

func NumericFeatureID(id int64) FeatureID {
	return FeatureID{raw: strconv.FormatInt(id, 10)}
}

func StringFeatureID(id string) FeatureID {
	data, _ := json.Marshal(id)
	return FeatureID{raw: string(data)}
}

func (id FeatureID) IsZero() bool {
	return id.raw == ""
}

func (id FeatureID) String() string {
	var s string
	if err := json.Unmarshal([]byte(id.raw), &s); err == nil {
		return s
	}
	return id.raw
}

func (id FeatureID) MarshalJSON() ([]byte, error) {
	if id.raw == "" {
		return []byte("null"), nil
	}
	return []byte(id.raw), nil
}

func (id *FeatureID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidFeatureID
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = StringFeatureID(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*id = FeatureID{raw: n.String()}
	default:
		return ErrInvalidFeatureID
	}

	return nil
}
