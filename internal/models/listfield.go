package models

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// CommaList is an ordered list of strings stored as a single comma-joined
// string. The stored shape is a legacy of the hosted store's column layout;
// inside the application it is always a slice.
type CommaList []string

// SplitList decodes a comma-joined string into its elements, trimming
// whitespace and dropping empty entries.
func SplitList(s string) CommaList {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make(CommaList, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Join encodes the list back into the stored comma-joined form.
func (l CommaList) Join() string {
	return strings.Join(l, ",")
}

// MarshalBSONValue stores the list as a comma-joined string. Elements must
// not contain the delimiter, otherwise the round trip would split them.
func (l CommaList) MarshalBSONValue() (bsontype.Type, []byte, error) {
	for _, e := range l {
		if strings.Contains(e, ",") {
			return 0, nil, fmt.Errorf("list element %q contains the delimiter", e)
		}
	}
	return bson.MarshalValue(l.Join())
}

// UnmarshalBSONValue decodes the stored comma-joined string back into a list.
func (l *CommaList) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bsontype.Null {
		*l = nil
		return nil
	}
	var s string
	raw := bson.RawValue{Type: t, Value: data}
	if err := raw.Unmarshal(&s); err != nil {
		return fmt.Errorf("failed to decode list field: %w", err)
	}
	*l = SplitList(s)
	return nil
}
