package domain

import "encoding/json"

// Ref is a foreign key the API serializes inconsistently: some endpoints
// return a bare numeric id, others embed the full object. The embedded
// object is kept as raw JSON so callers that need it can decode it into
// the concrete type.
type Ref struct {
	ID  int64
	Raw json.RawMessage
}

func (r *Ref) UnmarshalJSON(b []byte) error {
	var id int64
	if err := json.Unmarshal(b, &id); err == nil {
		r.ID = id
		r.Raw = nil
		return nil
	}

	var obj struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	r.ID = obj.ID
	r.Raw = append(r.Raw[:0], b...)
	return nil
}

// MarshalJSON always writes the bare id; the embedded form is an inbound
// quirk only.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// Embedded reports whether the API returned the full object.
func (r Ref) Embedded() bool { return len(r.Raw) > 0 }
