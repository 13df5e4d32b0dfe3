// Package model holds the GORM structs that mirror the database schema.
// They are exported so cmd/gen can build typed query helpers from them.
package model

import "github.com/google/uuid"

// newID fills a zero primary key with a time-ordered UUID before insert.
func newID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}

// All lists every model for migrations and code generation.
func All() []any {
	return []any{
		&ProfileModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&CategoryModel{},
		&ListingModel{},
		&RequestModel{},
		&UserDeviceModel{},
	}
}

