package mapper

import (
	"strconv"
	"strings"
)

// Attribute tags Station uses on assignable shift teams.
const (
	PresentationModalityTag = "presentation_modality"
	AssignmentTypeTag       = "assignment_type"
	ServiceNameTag          = "service_name"
	LicenseTag              = "license"
	InsuranceTag            = "insurance"
	SkillIDTag              = "skill_id"
)

// FlattenAttribute returns the value of every "tag:value" attribute whose tag
// matches, in source order. Values may themselves contain ':'.
// No match gives an empty, non-nil slice.
func FlattenAttribute(attrs []string, tag string) []string {
	prefix := tag + ":"
	values := []string{}
	for _, attr := range attrs {
		if strings.HasPrefix(attr, prefix) {
			values = append(values, attr[len(prefix):])
		}
	}
	return values
}

// FirstAttribute is FlattenAttribute for single-valued tags: the first match
// wins, "" when the tag is absent.
func FirstAttribute(attrs []string, tag string) string {
	prefix := tag + ":"
	for _, attr := range attrs {
		if strings.HasPrefix(attr, prefix) {
			return attr[len(prefix):]
		}
	}
	return ""
}

// FlattenIntAttribute parses the matching values as integers. Values that do
// not parse are skipped.
func FlattenIntAttribute(attrs []string, tag string) []int64 {
	values := []int64{}
	for _, v := range FlattenAttribute(attrs, tag) {
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			continue
		}
		values = append(values, i)
	}
	return values
}

func attribute(tag, value string) string {
	return tag + ":" + value
}
