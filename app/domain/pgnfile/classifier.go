package pgnfile

import (
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Classify partitions files into a numeric-leading subgroup followed by an
// alphabetic subgroup and sorts each one: numeric ascending by the leading
// integer of the display name, alphabetic by locale-aware display name order.
// Both sorts are stable, so ties keep their input order. The input slice is
// not modified.
func Classify(files []PGNFile) []PGNFile {
	numeric := make([]PGNFile, 0, len(files))
	alphabetic := make([]PGNFile, 0, len(files))
	for _, file := range files {
		if startsWithDigit(file.DisplayName) {
			numeric = append(numeric, file)
		} else {
			alphabetic = append(alphabetic, file)
		}
	}

	sort.SliceStable(numeric, func(i, j int) bool {
		return leadingNumber(numeric[i].DisplayName) < leadingNumber(numeric[j].DisplayName)
	})

	collator := collate.New(language.English)
	sort.SliceStable(alphabetic, func(i, j int) bool {
		return collator.CompareString(alphabetic[i].DisplayName, alphabetic[j].DisplayName) < 0
	})

	return append(numeric, alphabetic...)
}

func startsWithDigit(name string) bool {
	return name != "" && name[0] >= '0' && name[0] <= '9'
}

// leadingNumber parses the maximal run of leading digits; names without one
// sort as 0.
func leadingNumber(name string) int {
	end := 0
	for end < len(name) && name[end] >= '0' && name[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	value, err := strconv.Atoi(name[:end])
	if err != nil {
		return 0
	}
	return value
}
