// Package writers turns homopolymer hits into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV, BED, JSON/JSONL, tables).
//   - Engine stays domain-only; Pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
//   - Every writer streams except "table", which must see all rows to size columns.
//   - tsv, bed, json and jsonl carry rows only, with no trailing summary line.
//     "table" is for people reading a terminal and ends with a "(N runs)" line.
package writers
