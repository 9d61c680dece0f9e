package openlibrary

import "encoding/json"

// flexName decodes a field that arrives either as a bare string or as
// an object carrying a name. Open Library mixes both forms in subject
// and publisher lists.
type flexName string

// UnmarshalJSON implements json.Unmarshaler.
func (f *flexName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexName(s)
		return nil
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*f = flexName(obj.Name)
	return nil
}

// flexText decodes a field that arrives either as a bare string or as
// a typed object carrying a value. Descriptions and biographies use
// both forms.
type flexText string

// UnmarshalJSON implements json.Unmarshaler.
func (f *flexText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexText(s)
		return nil
	}

	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*f = flexText(obj.Value)
	return nil
}

// names flattens a flexName list, dropping empty entries.
func names(entries []flexName) []string {
	if len(entries) == 0 {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry != "" {
			out = append(out, string(entry))
		}
	}
	return out
}
