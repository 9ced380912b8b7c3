package console

import (
	"reflect"
	"strings"
	"sync"
)

var (
	// semanticMap stores semantic tag -> direct tag mappings (e.g., "version" -> "{{|cyan|}}")
	semanticMap map[string]string
	mapsOnce    sync.Once
	mapsMu      sync.RWMutex
)

// ensureMaps builds the semantic map on first use.
func ensureMaps() {
	mapsOnce.Do(BuildColorMap)
}

// BuildColorMap rebuilds the semantic map from the Colors struct and the base aliases,
// dropping any tag registered since.
func BuildColorMap() {
	m := make(map[string]string)
	val := reflect.ValueOf(Colors)
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		m[strings.ToLower(typ.Field(i).Name)] = val.Field(i).String()
	}
	for k, v := range baseAliases {
		m[k] = v
	}

	mapsMu.Lock()
	semanticMap = m
	mapsMu.Unlock()
}

// RegisterSemanticTag registers a semantic tag with its direct tag value.
// The name may be given with or without surrounding underscores.
func RegisterSemanticTag(name, taggedValue string) {
	ensureMaps()
	mapsMu.Lock()
	defer mapsMu.Unlock()
	semanticMap[normalizeTagName(name)] = taggedValue
}

// ResetCustomColors clears all registered tags and rebuilds from Colors.
func ResetCustomColors() {
	ensureMaps()
	BuildColorMap()
}

func lookupSemantic(name string) (string, bool) {
	ensureMaps()
	mapsMu.RLock()
	defer mapsMu.RUnlock()
	v, ok := semanticMap[normalizeTagName(name)]
	return v, ok
}

func normalizeTagName(name string) string {
	return strings.ToLower(strings.Trim(name, "_"))
}
