package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Address is the delivery address snapshot stored on an order (JSONB column).
type Address struct {
	Street     string  `json:"street"`
	Exterior   string  `json:"exterior"`
	Interior   *string `json:"interior,omitempty"`
	Colonia    string  `json:"colonia"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	References *string `json:"references,omitempty"`
}

// Value serializes the address to JSON.
func (a *Address) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan decodes JSONB into the address struct.
func (a *Address) Scan(value interface{}) error {
	if value == nil {
		*a = Address{}
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, a)
}

func asJSON(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported scan type %T", value)
	}
}
