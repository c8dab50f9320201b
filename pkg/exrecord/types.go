package exrecord

import "github.com/ukaji3/exrecord-go/pkg/exrecord/models"

// Date is a calendar date field type.
type Date = models.Date

// TimeOfDay is a clock time field type.
type TimeOfDay = models.TimeOfDay

// ValidationProblem is a data problem collected during a conversion.
type ValidationProblem = models.ValidationProblem
