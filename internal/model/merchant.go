package model

import (
	"bytes"
	"encoding/json"
)

// Merchant identifies where a receipt came from. Older API versions send the
// merchant as a bare name string, newer ones as an object. Both decode into
// this type; encoding writes a bare string when only the name is known.
type Merchant struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Domain  string `json:"domain"`
}

type merchantObject Merchant

func (m Merchant) MarshalJSON() ([]byte, error) {
	if m.Address == "" && m.Domain == "" {
		return json.Marshal(m.Name)
	}
	return json.Marshal(merchantObject(m))
}

func (m *Merchant) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*m = Merchant{}
		return nil
	}

	if trimmed[0] == '"' {
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return err
		}
		*m = Merchant{Name: name}
		return nil
	}

	var obj merchantObject
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return err
	}
	*m = Merchant(obj)
	return nil
}

func (m Merchant) String() string {
	return m.Name
}
