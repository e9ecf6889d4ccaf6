package ingest

import (
	"sort"

	"edusight/domain/assessment"
	"edusight/domain/core"
)

// Merge combines the partial records of the three sources into one
// StudentRecord per distinct identifier. It is a pure reducer over a map:
// each step produces a new merged value, nothing is mutated in place after
// the merge returns.
//
// Merge order is fixed (attitudinal, then cognitive, then academic) so that a
// later source's "Unknown" identity defaults can never displace a name or
// grade an earlier source resolved. Within one source, the last row for a
// student wins. Output is sorted by student identifier for determinism.
func Merge(attitudinal, cognitive, academic []assessment.StudentRecord) []assessment.StudentRecord {
	merged := make(map[core.StudentID]assessment.StudentRecord)

	for _, batch := range [][]assessment.StudentRecord{attitudinal, cognitive, academic} {
		for _, partial := range batch {
			existing, ok := merged[partial.StudentID]
			if !ok {
				merged[partial.StudentID] = partial
				continue
			}
			merged[partial.StudentID] = mergeInto(existing, partial)
		}
	}

	ids := make([]core.StudentID, 0, len(merged))
	for id := range merged {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	records := make([]assessment.StudentRecord, 0, len(ids))
	for _, id := range ids {
		records = append(records, merged[id])
	}
	return records
}

// mergeInto shallow-merges the incoming partial onto the existing record:
// incoming source blocks win; identity fields only change when the existing
// value is unresolved and the incoming one is real.
func mergeInto(existing, incoming assessment.StudentRecord) assessment.StudentRecord {
	out := existing
	out.Name = mergeIdentity(existing.Name, incoming.Name)
	out.Grade = mergeIdentity(existing.Grade, incoming.Grade)
	out.Section = mergeIdentity(existing.Section, incoming.Section)

	if incoming.Attitudinal != nil {
		out.Attitudinal = incoming.Attitudinal
	}
	if incoming.Cognitive != nil {
		out.Cognitive = incoming.Cognitive
	}
	if incoming.Academic != nil {
		out.Academic = incoming.Academic
	}
	return out
}

func mergeIdentity(old, new string) string {
	if resolved(old) {
		return old
	}
	if resolved(new) {
		return new
	}
	return old
}

func resolved(v string) bool {
	return v != "" && v != unknownIdentity
}
