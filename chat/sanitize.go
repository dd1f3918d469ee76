package chat

import (
	"math"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// SanitizeMessage rewrites float-encoded whole-number index fields inside a
// raw assistant message's tool_calls to exact integers and returns the
// corrected JSON. Some encoders round-trip whole numbers as floating point,
// and the endpoint rejects a non-integer index when the message is later sent
// back as history. All other fields pass through unchanged; input without
// tool calls is returned as-is. Idempotent.
func SanitizeMessage(raw []byte) []byte {
	calls := gjson.GetBytes(raw, "tool_calls")
	if !calls.IsArray() {
		return raw
	}
	out := raw
	for i, call := range calls.Array() {
		prefix := "tool_calls." + strconv.Itoa(i)
		out = rewriteWholeFloat(out, prefix+".index", call.Get("index"))
		// Nested function payloads may carry their own index field.
		out = rewriteWholeFloat(out, prefix+".function.index", call.Get("function.index"))
	}
	return out
}

func rewriteWholeFloat(raw []byte, path string, v gjson.Result) []byte {
	if v.Type != gjson.Number || !hasFloatSyntax(v.Raw) {
		return raw
	}
	if v.Num != math.Trunc(v.Num) {
		// Genuinely fractional values are not ours to guess at; the typed
		// decode will reject them downstream.
		return raw
	}
	out, err := sjson.SetBytes(raw, path, int64(v.Num))
	if err != nil {
		return raw
	}
	return out
}

// hasFloatSyntax reports whether a raw JSON number uses fractional or
// exponent notation rather than plain integer digits.
func hasFloatSyntax(raw string) bool {
	for _, r := range raw {
		if r == '.' || r == 'e' || r == 'E' {
			return true
		}
	}
	return false
}
