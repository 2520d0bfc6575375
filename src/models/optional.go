package models

import "encoding/json"

// OptionalString distinguishes a JSON key that was omitted from one that
// was present, including present-and-null. Needed for PATCH bodies where
// omitting "category" keeps the old value but an explicit null clears it.
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON only runs when the key is present in the body, so Set
// records presence; a JSON null leaves Value nil.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	return json.Unmarshal(data, &o.Value)
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}
