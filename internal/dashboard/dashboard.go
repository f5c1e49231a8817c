// Package dashboard derives the owner's profile completeness view.
package dashboard

import (
	"reflect"
	"strings"

	"github.com/rohits-web03/folio/internal/models"
)

// Excluded lists the profile fields the dashboard never asks the owner to fill.
var Excluded = []string{"id", "userId", "createdAt", "updatedAt", "picture"}

type Field struct {
	Field  string `json:"field"`
	Filled bool   `json:"filled"`
	Value  any    `json:"value"`
}

type Completeness struct {
	Fields  []Field `json:"fields"`
	Filled  int     `json:"filled"`
	Total   int     `json:"total"`
	Percent int     `json:"percent"`
}

// Evaluate walks the profile's JSON fields in declaration order and reports which are filled.
func Evaluate(p models.Profile) Completeness {
	var c Completeness
	collect(reflect.ValueOf(p), &c)

	c.Total = len(c.Fields)
	if c.Total > 0 {
		c.Percent = c.Filled * 100 / c.Total
	}
	return c
}

func collect(v reflect.Value, c *Completeness) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			collect(v.Field(i), c)
			continue
		}
		name := jsonName(sf)
		if name == "" || excluded(name) {
			continue
		}
		fv := v.Field(i)
		filled := !IsEmpty(fv.Interface())
		if filled {
			c.Filled++
		}
		c.Fields = append(c.Fields, Field{Field: name, Filled: filled, Value: fv.Interface()})
	}
}

func jsonName(sf reflect.StructField) string {
	if !sf.IsExported() {
		return ""
	}
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name
	}
	return sf.Name
}

func excluded(name string) bool {
	for _, e := range Excluded {
		if e == name {
			return true
		}
	}
	return false
}

// IsEmpty reports whether a value counts as unfilled: a zero value, a
// whitespace-only string, or a list with no non-blank items.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !IsEmpty(v.Index(i).Interface()) {
				return false
			}
		}
		return true
	case reflect.Pointer, reflect.Interface:
		return v.IsNil() || IsEmpty(v.Elem().Interface())
	}
	return v.IsZero()
}
