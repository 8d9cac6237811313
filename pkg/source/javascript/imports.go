package javascript

import (
	"regexp"
	"slices"
)

// Specifier extraction is regex-based. This deliberately does not parse
// JavaScript: it only needs the quoted module specifier of each static
// import, re-export, require call, or dynamic import. False positives
// inside strings or comments are tolerable because unresolvable
// specifiers are dropped during resolution.
var (
	// import defaultExport from 'mod'; import { a, b } from "mod";
	// import 'mod'; export { a } from 'mod'; export * from 'mod';
	staticImportRe = regexp.MustCompile(`(?m)^[ \t]*(?:import|export)\b[^'"\n]*['"]([^'"\n]+)['"]`)

	// const mod = require('mod')
	requireRe = regexp.MustCompile(`\brequire\(\s*['"]([^'"\n]+)['"]\s*\)`)

	// await import('mod')
	dynamicImportRe = regexp.MustCompile(`\bimport\(\s*['"]([^'"\n]+)['"]\s*\)`)
)

// specifiers returns all module specifiers referenced by the file
// content, in source order. Duplicates are preserved.
func specifiers(content string) []string {
	type match struct {
		pos  int
		spec string
	}
	var found []match

	// A dynamic import at line start matches both the static and the
	// dynamic pattern; dedupe on the specifier's position so one import
	// statement never yields two edges.
	claimed := make(map[int]bool)
	for _, re := range []*regexp.Regexp{staticImportRe, requireRe, dynamicImportRe} {
		for _, m := range re.FindAllStringSubmatchIndex(content, -1) {
			if claimed[m[2]] {
				continue
			}
			claimed[m[2]] = true
			found = append(found, match{pos: m[2], spec: content[m[2]:m[3]]})
		}
	}

	slices.SortFunc(found, func(a, b match) int { return a.pos - b.pos })

	specs := make([]string, len(found))
	for i, m := range found {
		specs[i] = m.spec
	}
	return specs
}
