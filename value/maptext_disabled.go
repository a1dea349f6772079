//go:build nomapjson

package value

// MapPlaceholder is the text rendering of every map value in builds
// carrying the nomapjson tag.
const MapPlaceholder = "map rendering disabled (built with nomapjson)"

func mapText(Value) string {
	return MapPlaceholder
}
