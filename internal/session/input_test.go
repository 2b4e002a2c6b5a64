package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresetsOrderedAndCopied(t *testing.T) {
	presets := Presets()

	assert.Equal(t, []string{
		"Grounded", "Anxious", "Overwhelmed", "Hopeful",
		"Lonely", "Motivated", "Restless", "Tender",
	}, presets)

	presets[0] = "mutated"
	assert.Equal(t, "Grounded", Presets()[0])
}

func TestSetFieldOverwrites(t *testing.T) {
	m := NewInputModel()

	m.SetField(FieldName, "Amina")
	m.SetField(FieldFeeling, "tired")
	m.SetField(FieldDetails, "long week")

	assert.Equal(t, "Amina", m.Name())
	assert.Equal(t, "tired", m.Feeling())
	assert.Equal(t, "long week", m.Details())

	m.SetField(FieldName, "")
	assert.Equal(t, "", m.Name())
}

func TestSelectPresetOverwritesFeelingOnly(t *testing.T) {
	m := NewInputModel()
	m.SetField(FieldName, "Amina")
	m.SetField(FieldFeeling, "somewhere between tired and fine")
	m.SetField(FieldDetails, "long week")

	m.SelectPreset("Anxious")

	assert.Equal(t, "Anxious", m.Feeling())
	assert.Equal(t, "Amina", m.Name())
	assert.Equal(t, "long week", m.Details())
}

func TestPresetRoundTrip(t *testing.T) {
	m := NewInputModel()

	m.SelectPreset("Anxious")
	assert.True(t, m.IsPresetActive("Anxious"))
	assert.False(t, m.IsPresetActive("Hopeful"))

	// Typing the label by hand activates the preset too, regardless of case.
	m.SetField(FieldFeeling, "anxious")
	assert.True(t, m.IsPresetActive("Anxious"))

	m.SetField(FieldFeeling, "  ANXIOUS  ")
	assert.True(t, m.IsPresetActive("Anxious"))

	m.SetField(FieldFeeling, "anxious-ish")
	assert.False(t, m.IsPresetActive("Anxious"))
}
