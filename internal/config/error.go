package config

import (
	"os"

	"github.com/ImSingee/go-ex/ee"
)

var (
	ErrNotExist  = os.ErrNotExist
	ErrNotFound  = ee.New("software not found")
	ErrDuplicate = ee.New("software with the same name already exists")
)

func IsNotExist(err error) bool {
	return ee.Is(err, ErrNotExist)
}

func IsNotFound(err error) bool {
	return ee.Is(err, ErrNotFound)
}
