// Package remote holds the document store accessors. Each collection gets
// create/list/update scoped by the caller's user id; only pictures has a
// delete. An empty user id fails every call before a query is issued.
package remote

import (
	"errors"

	"gorm.io/gorm"
)

var ErrUnauthenticated = errors.New("unauthenticated: no user id")

type Client struct {
	Notes    Notes
	Meds     Meds
	Calendar Calendar
	Records  Records
	Pictures Pictures
}

func NewClient(db *gorm.DB) *Client {
	return &Client{
		Notes:    Notes{db: db},
		Meds:     Meds{db: db},
		Calendar: Calendar{db: db},
		Records:  Records{db: db},
		Pictures: Pictures{db: db},
	}
}
