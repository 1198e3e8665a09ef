package nutrition

import (
	"FoodTracker-Backend/domain"
	"strings"
)

// ReferenceEntry is one row of the reference nutrition table, per reference serving.
type ReferenceEntry struct {
	Name    string
	Profile domain.MacroProfile
}

// referenceTable is ordered: partial matching returns the first entry that fits.
// It is never mutated after init.
var referenceTable = []ReferenceEntry{
	{"chicken breast", domain.MacroProfile{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0}},
	{"brown rice", domain.MacroProfile{Calories: 112, Protein: 2.6, Carbs: 22, Fat: 0.9, Fiber: 1.8}},
	{"salmon", domain.MacroProfile{Calories: 208, Protein: 25, Carbs: 0, Fat: 12, Fiber: 0}},
	{"broccoli", domain.MacroProfile{Calories: 34, Protein: 2.8, Carbs: 7, Fat: 0.4, Fiber: 2.6}},
	{"apple", domain.MacroProfile{Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2, Fiber: 2.4}},
	{"banana", domain.MacroProfile{Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3, Fiber: 2.6}},
	{"avocado", domain.MacroProfile{Calories: 160, Protein: 2, Carbs: 9, Fat: 15, Fiber: 7}},
	{"eggs", domain.MacroProfile{Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11, Fiber: 0}},
	{"quinoa", domain.MacroProfile{Calories: 120, Protein: 4.4, Carbs: 22, Fat: 1.9, Fiber: 2.8}},
	{"sweet potato", domain.MacroProfile{Calories: 86, Protein: 1.6, Carbs: 20, Fat: 0.1, Fiber: 3}},
}

var referenceIndex = func() map[string]int {
	idx := make(map[string]int, len(referenceTable))
	for i, entry := range referenceTable {
		idx[entry.Name] = i
	}
	return idx
}()

// ReferenceTable returns a copy of the reference rows in match order.
func ReferenceTable() []ReferenceEntry {
	out := make([]ReferenceEntry, len(referenceTable))
	copy(out, referenceTable)
	return out
}

// FindBestMatch resolves a free-text food name against the reference table.
// An exact match on the lowercased, trimmed name wins; otherwise the first entry whose
// key is contained in the name, or which contains the name, is returned.
//
// Short names can match unrelated entries ("egg" matches "eggs", "a" matches "chicken
// breast"). That is current behaviour and is kept until product confirms the intent.
func FindBestMatch(name string) (ReferenceEntry, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return ReferenceEntry{}, false
	}

	if i, ok := referenceIndex[normalized]; ok {
		return referenceTable[i], true
	}

	for _, entry := range referenceTable {
		if strings.Contains(normalized, entry.Name) || strings.Contains(entry.Name, normalized) {
			return entry, true
		}
	}

	return ReferenceEntry{}, false
}
