package models

import "encoding/json"

// Ref is a reference to a parent entity. The backend sometimes returns the
// bare id string and sometimes the populated document; both decode to the id.
type Ref string

func (r *Ref) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = Ref(id)
		return nil
	}
	var doc struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*r = Ref(doc.ID)
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

func (r Ref) String() string {
	return string(r)
}
