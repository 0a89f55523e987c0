package main

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// options are the run parameters collected from flags.
type options struct {
	Projects int
	Seed     uint64
	Output   string
}

// Validate rejects a non-positive project count and an empty output path
// before any generation work starts. Required must accompany Min: threshold
// rules skip zero values, so Min(1) alone would let a zero count through.
func (o *options) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.Projects,
			validation.Required.Error("must request at least one project"),
			validation.Min(1).Error("must request at least one project"),
		),
		validation.Field(&o.Output, validation.Required.Error("output path must not be empty")),
	)
}
