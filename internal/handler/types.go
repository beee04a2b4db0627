package handler

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Calendar-date fields travel as "YYYY-MM-DD" strings on the wire, carried
// by openapi_types.Date. These helpers convert between the wire type and the
// *time.Time the domain uses.

func toDate(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: *t}
}

func fromDate(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
