// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package validation provides request validation using go-playground/validator v10.
//
// A singleton validator is initialised once with the dashboard's custom tags:
//
//   - chart: the value names a known chart
//   - selectable_chart: the value names a chart that accepts selections
//
// Both are typically used on selection maps keyed by chart name:
//
//	type DashboardRequest struct {
//	    Selections map[string]*models.SelectedData `validate:"max=8,dive,keys,selectable_chart,endkeys"`
//	}
//
// Failures come back as *RequestValidationError, which converts to the API's
// VALIDATION_ERROR format through ToAPIError:
//
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "Selections must name a selectable chart",
//	    "details": {"field": "Selections[rating_table]", "tag": "selectable_chart", "value": "rating_table"}
//	}
package validation
