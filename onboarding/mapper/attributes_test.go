package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var attrs = []string{
	"license:CO",
	"insurance:Cigna/Denver",
	"skill_id:52",
	"assignment_type:auto-assignable",
	"license:TX",
	"presentation_modality:in_person",
	"skill_id:not-a-number",
	"insurance:Aetna",
	"skill_id:7",
	"presentation_modality:tele",
	"service_name:Acute Care",
	"licensed:ignored",
}

func TestFlattenAttribute(t *testing.T) {
	assert.Equal(t, []string{"CO", "TX"}, FlattenAttribute(attrs, LicenseTag))
	assert.Equal(t, []string{"Cigna/Denver", "Aetna"}, FlattenAttribute(attrs, InsuranceTag))
	assert.Equal(t, []string{}, FlattenAttribute(attrs, "unknown"))
	assert.Equal(t, []string{}, FlattenAttribute(nil, LicenseTag))
}

func TestFlattenAttributeKeepsColonsInValue(t *testing.T) {
	assert.Equal(t, []string{"a:b"}, FlattenAttribute([]string{"note:a:b"}, "note"))
}

func TestFirstAttribute(t *testing.T) {
	assert.Equal(t, "in_person", FirstAttribute(attrs, PresentationModalityTag))
	assert.Equal(t, "auto-assignable", FirstAttribute(attrs, AssignmentTypeTag))
	assert.Equal(t, "Acute Care", FirstAttribute(attrs, ServiceNameTag))
	assert.Equal(t, "", FirstAttribute(attrs, "missing"))
}

func TestFlattenIntAttribute(t *testing.T) {
	assert.Equal(t, []int64{52, 7}, FlattenIntAttribute(attrs, SkillIDTag))
	assert.Equal(t, []int64{}, FlattenIntAttribute([]string{"skill_id:x"}, SkillIDTag))
}
