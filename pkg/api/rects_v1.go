// pkg/api/rects_v1.go
package api

// RectV1 is the stable JSON schema for one exclusion rectangle.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RectV1 struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Command string `json:"command,omitempty"`
}
