//go:build !unix

package main

import (
	"os"

	"github.com/pkg/errors"
)

func mapFile(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read file")
	}
	return data, func() error { return nil }, nil
}
