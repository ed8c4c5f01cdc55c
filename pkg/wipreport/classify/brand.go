// Package classify derives brands for timesheet records and partitions them
// into report views.
package classify

import (
	"sort"
	"strings"
)

// Brand is the billing brand a record belongs to.
type Brand string

const (
	BrandExperis         Brand = "Experis"
	BrandManpower        Brand = "Manpower"
	BrandTalentSolutions Brand = "Talent Solutions"
	BrandUnclassified    Brand = ""
)

// talentSolutionsMarker marks Manpower groups billed as Talent Solutions.
const talentSolutionsMarker = "560"

var experisGroups = map[string]struct{}{
	"T3-4-PO":               {},
	"EB-4-NO PO":            {},
	"EB-4-PO":               {},
	"EB-CalendarMonthly-PO": {},
	"EB-M-No PO":            {},
	"EB-M-PO":               {},
	"EB-W-No PO":            {},
	"EB-W-PO":               {},
	"T3-4-ONLI":             {},
	"T3-4-SCHE":             {},
	"T3-M-No PO":            {},
	"T3-M-PO":               {},
	"T3-SelfBIll-NONPO":     {},
	"T3-W-Stand":            {},
	"TCS self bill":         {},
}

var manpowerGroups = map[string]struct{}{
	"TCS Weekly-Consolidated-PO":                     {},
	"TCS Consolidated-W- PO":                         {},
	"TCS weekly PO":                                  {},
	"TCS EB-W- PO":                                   {},
	"TCS -Weekly- Consolidated- No PO - 560 Back up": {},
}

// BrandFor classifies an invoice group code. Matching is exact.
func BrandFor(invoiceGroup string) Brand {
	if _, ok := experisGroups[invoiceGroup]; ok {
		return BrandExperis
	}
	if _, ok := manpowerGroups[invoiceGroup]; ok {
		if strings.Contains(invoiceGroup, talentSolutionsMarker) {
			return BrandTalentSolutions
		}
		return BrandManpower
	}
	return BrandUnclassified
}

// IsManpower reports whether b is written to the Manpower sheet.
func (b Brand) IsManpower() bool {
	return b == BrandManpower || b == BrandTalentSolutions
}

// Label returns the brand name, or "unclassified" for the empty brand.
func (b Brand) Label() string {
	if b == BrandUnclassified {
		return "unclassified"
	}
	return string(b)
}

// ExperisGroups returns the Experis invoice group codes in sorted order.
func ExperisGroups() []string {
	return sortedKeys(experisGroups)
}

// ManpowerGroups returns the Manpower invoice group codes in sorted order.
func ManpowerGroups() []string {
	return sortedKeys(manpowerGroups)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
