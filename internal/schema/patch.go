package schema

import (
	"bytes"
	"encoding/json"
	"sort"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson"

	"jobsearch/internal/errcode"
)

type patchKind int

const (
	patchString patchKind = iota
	patchBool
	patchRecords
)

// userPatchFields lists the User fields a merge patch may set, keyed by wire name.
var userPatchFields = map[string]patchKind{
	"name":            patchString,
	"email":           patchString,
	"emailVarified":   patchBool,
	"profile_picture": patchString,
	"social_link":     patchString,
	"password":        patchString,
	"phone":           patchString,
	"education":       patchRecords,
	"skills":          patchString,
	"experience":      patchRecords,
	"languages":       patchString,
}

// ParseUserPatch validates a merge patch against the User schema and returns
// the $set document. Unknown keys, the identifier, nulls and mistyped values
// are rejected together in one MissingField error.
func ParseUserPatch(body map[string]json.RawMessage) (bson.M, error) {
	set := bson.M{}
	var fields []errcode.FieldError

	for key, raw := range body {
		if key == "_id" || key == "id" {
			fields = append(fields, errcode.FieldError{Field: key, Error: "identifier cannot be changed"})
			continue
		}
		kind, ok := userPatchFields[key]
		if !ok {
			fields = append(fields, errcode.FieldError{Field: key, Error: "unknown field"})
			continue
		}
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			fields = append(fields, errcode.FieldError{Field: key, Error: "must not be null"})
			continue
		}

		value, msg := decodePatchValue(kind, raw)
		if msg != "" {
			fields = append(fields, errcode.FieldError{Field: key, Error: msg})
			continue
		}
		if key == "password" && CheckPassword(value.(string)) != nil {
			fields = append(fields, errcode.FieldError{Field: key, Error: "must not exceed 72 bytes"})
			continue
		}
		set[key] = value
	}

	if len(fields) > 0 {
		sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
		return nil, errcode.Fields("Validation failed", fields)
	}
	return set, nil
}

func decodePatchValue(kind patchKind, raw json.RawMessage) (any, string) {
	switch kind {
	case patchBool:
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, "must be a boolean"
		}
		return v, ""
	case patchRecords:
		var v []bson.M
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, "must be a list of objects"
		}
		if v == nil {
			v = []bson.M{}
		}
		return v, ""
	default:
		var v string
		if err := json.Unmarshal(raw, &v); err != nil || !utf8.ValidString(v) {
			return nil, "must be a string"
		}
		return v, ""
	}
}
