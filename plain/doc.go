// Package plain bridges ir nodes and plain Go data.
//
// ToPlain and FromPlain convert between nodes and nested Go values
// (Map, []any, string, bool, int64, float64, nil).  Comments and
// positions do not survive the trip; Map preserves key order where a
// built-in map would not.
//
// MarshalJSON, UnmarshalJSON, MarshalYAML and UnmarshalYAML layer the
// external codecs on top of the same bridge.
package plain
