// Package writers turns mask programs into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (mac commands, TSV, JSON).
//   - The mask core stays domain-only; app stays orchestration-only.
//   - JSON goes through pkg/api (v1) for a stable wire format.
package writers
