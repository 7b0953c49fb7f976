package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zcrt/zcrt/schema"
	"github.com/zcrt/zcrt/tag"
	"github.com/zcrt/zcrt/zcerr"
)

func TestValidateSchemaDuplicateFieldName(t *testing.T) {
	s := schema.New("widget", 1,
		schema.NewField("id", tag.U32),
		schema.NewField("id", tag.String),
	)

	result := ValidateSchema(s)

	assert.False(t, result.Valid())
	assert.Len(t, result.Errors, 1)
	assert.Equal(t, zcerr.KindInvalidSchema, result.Errors[0].Kind)
	assert.Equal(t, "id", result.Errors[0].Field)
}

func TestValidateSchemaAddedInVersionExceedsSchemaVersion(t *testing.T) {
	s := schema.New("widget", 2,
		schema.NewField("id", tag.U32),
		schema.NewField("extra", tag.String).WithAddedIn(5),
	)

	result := ValidateSchema(s)

	assert.False(t, result.Valid())
	assert.Len(t, result.Errors, 1)
	assert.Equal(t, zcerr.KindInvalidSchema, result.Errors[0].Kind)
	assert.Equal(t, "extra", result.Errors[0].Field)
}

func TestValidateSchemaValid(t *testing.T) {
	s := schema.New("widget", 1,
		schema.NewField("id", tag.U32),
		schema.NewField("name", tag.String),
	)

	result := ValidateSchema(s)

	assert.True(t, result.Valid())
	assert.Empty(t, result.Errors)
}

func TestValidateSchemaOptionalWithoutDefaultWarns(t *testing.T) {
	s := schema.New("widget", 1,
		schema.NewField("id", tag.U32),
		schema.FieldDefinition{Name: "nickname", Type: tag.String, Required: false, AddedInVersion: 1},
	)

	result := ValidateSchema(s)

	assert.True(t, result.Valid())
	assert.NotEmpty(t, result.Warnings)
}

func TestValidateSchemaEmptyFieldName(t *testing.T) {
	s := schema.New("widget", 1,
		schema.FieldDefinition{Name: "", Type: tag.U8, Required: true, AddedInVersion: 1},
	)

	result := ValidateSchema(s)

	assert.False(t, result.Valid())
}

func TestValidateSchemaRemovedNotAfterAdded(t *testing.T) {
	s := schema.New("widget", 3,
		schema.NewField("id", tag.U32).WithAddedIn(2).WithRemovedIn(2),
	)

	result := ValidateSchema(s)

	assert.False(t, result.Valid())
}

func TestValidateSchemaFamilyCircularReference(t *testing.T) {
	parent := schema.New("parent", 1,
		schema.NewField("child", tag.Struct),
	)
	child := schema.New("child", 1,
		schema.NewField("parent", tag.Struct),
	)

	registry := map[string]*schema.Schema{
		"child":  child,
		"parent": parent,
	}

	result := ValidateSchemaFamily(parent, registry)

	assert.False(t, result.Valid())
	found := false
	for _, e := range result.Errors {
		if e.Kind == zcerr.KindInvalidSchema && e.Message == "circular nested-schema reference detected" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateSchemaFamilyUnresolvedNestedFieldWarns(t *testing.T) {
	s := schema.New("widget", 1,
		schema.NewField("part", tag.Struct),
	)

	result := ValidateSchemaFamily(s, map[string]*schema.Schema{})

	assert.True(t, result.Valid())
	assert.NotEmpty(t, result.Warnings)
}

func TestValidateSchemaFamilyNoDuplicateStructWarning(t *testing.T) {
	child := schema.New("child", 1, schema.NewField("id", tag.U32))
	s := schema.New("widget", 1,
		schema.NewField("part", tag.Struct),
	)

	registry := map[string]*schema.Schema{"part": child}

	result := ValidateSchemaFamily(s, registry)

	count := 0
	for _, w := range result.Warnings {
		if w.Message == nestedStructWarning {
			count++
		}
	}
	assert.Equal(t, 0, count)
}
