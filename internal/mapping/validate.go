package mapping

import (
	"fmt"
	"strconv"
	"strings"

	"coco-prep/internal/diagnostic"
)

const (
	sourceMapping  = "mapping"
	sourceTaxonomy = "taxonomy"
)

// Validate checks a table before it is applied to any document.
//
// Errors: empty taxonomy, negative source ids, target ids outside the
// taxonomy. Warnings: empty or duplicate class names, an empty mapping,
// targets shared by several sources. Infos: class names with surrounding
// whitespace.
func Validate(t *Table) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if t == nil {
		res.AddError("table_is_nil", "mapping table is nil", "", "")
		return res
	}

	if len(t.Taxonomy) == 0 {
		res.AddError("empty_taxonomy", "target taxonomy has no classes", sourceTaxonomy, "")
	}

	validateTaxonomy(res, t.Taxonomy)

	if len(t.Mapping) == 0 {
		res.AddWarning("empty_mapping", "mapping has no entries; every annotation will be dropped", sourceMapping, "")
	}

	seenTargets := map[int]int{}

	for _, source := range t.SourceIDs() {
		target := t.Mapping[source]
		loc := strconv.Itoa(source)

		if source < 0 {
			res.AddError("invalid_source_id", fmt.Sprintf("source id %d is negative", source), sourceMapping, loc)
		}

		if _, ok := t.TargetName(target); !ok {
			res.AddError("target_out_of_range",
				fmt.Sprintf("target id %d outside taxonomy range [0, %d)", target, len(t.Taxonomy)),
				sourceMapping, loc)

			continue
		}

		if prev, ok := seenTargets[target]; ok {
			res.AddWarning("non_injective",
				fmt.Sprintf("target id %d is also mapped from %d; the mapping cannot be inverted", target, prev),
				sourceMapping, loc)

			continue
		}

		seenTargets[target] = source
	}

	return res
}

func validateTaxonomy(res *diagnostic.Diagnostics, names []string) {
	seen := map[string]int{}

	for i, name := range names {
		loc := strconv.Itoa(i)

		if strings.TrimSpace(name) == "" {
			res.AddWarning("empty_class_name", "class name is empty", sourceTaxonomy, loc)
			continue
		}

		if name != strings.TrimSpace(name) {
			res.AddInfo("name_whitespace", fmt.Sprintf("class name %q has surrounding whitespace", name), sourceTaxonomy, loc)
		}

		if prev, ok := seen[name]; ok {
			res.AddWarning("duplicate_class_name", fmt.Sprintf("class name %q already used by id %d", name, prev), sourceTaxonomy, loc)
			continue
		}

		seen[name] = i
	}
}
